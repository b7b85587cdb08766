package qpath

import (
	"github.com/pawelWritesCode/qpath/pkg/cache"
	"github.com/pawelWritesCode/qpath/pkg/node"
	"github.com/pawelWritesCode/qpath/pkg/schema"
	"github.com/pawelWritesCode/qpath/pkg/segment"
	"github.com/pawelWritesCode/qpath/pkg/serializer"
)

// Option customizes single query call.
type Option func(*settings)

type settings struct {
	deserializer serializer.Deserializer
	cache        cache.Cache
}

// WithDeserializer makes query use given deserializer when coercing located node
// into types outside the scalar fast path.
func WithDeserializer(d serializer.Deserializer) Option {
	return func(s *settings) { s.deserializer = d }
}

// WithCache makes query reuse parsed form of path expression preserved under raw path string.
func WithCache(c cache.Cache) Option {
	return func(s *settings) { s.cache = c }
}

func newSettings(opts []Option) settings {
	s := settings{deserializer: serializer.NewJSONFormatter()}
	for _, opt := range opts {
		opt(&s)
	}

	return s
}

// parse obtains segments of path expression, consulting cache when one is attached.
func (s settings) parse(path string) ([]segment.Segment, error) {
	if s.cache != nil {
		if segments, err := s.cache.GetSaved(path); err == nil {
			return segments, nil
		}
	}

	segments, err := segment.Parse(path)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Save(path, segments)
	}

	return segments, nil
}

// Select locates node under given path expression.
// Second return value tells whether node was found; it is false for missing property,
// out of range index or navigation through non-object/non-array node.
// Error is returned only for path expression with invalid syntax.
func Select(root node.Node, path string, opts ...Option) (node.Node, bool, error) {
	segments, err := newSettings(opts).parse(path)
	if err != nil {
		return nil, false, err
	}

	located, found := navigate(root, segments)

	return located, found, nil
}

// SelectAndValidate locates node under given path expression and validates its JSON
// encoding against given raw JSON schema using provided validator.
// First return value tells whether node was found; validation error is returned
// only for found node.
func SelectAndValidate(root node.Node, path, jsonSchema string, v schema.Validator, opts ...Option) (bool, error) {
	located, found, err := Select(root, path, opts...)
	if err != nil {
		return false, err
	}

	if !found {
		return false, nil
	}

	raw, err := located.Raw()
	if err != nil {
		return true, err
	}

	return true, v.Validate(string(raw), jsonSchema)
}
