// Package segment holds utilities for parsing path expressions pointing at nodes of JSON-like documents.
//
// Path expression consists of "." separated property names and "[n]" / "[-n]" bracketed
// integer indices. Backslash escapes the immediately following character, so "\." and "\["
// are literal characters inside a property name, not delimiters:
//
//	store.books[-1].price
//	dotted\.key.value
//
// An empty property segment (two consecutive delimiters, or a path starting with ".")
// ends the segment stream early instead of raising an error. This leniency is deliberate.
package segment

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedPath tells that path expression has invalid syntax.
var ErrMalformedPath = errors.New("malformed path")

// Segment represents single step of path expression: either named property or array index.
type Segment struct {
	// Name holds property name with escape sequences already resolved to literal characters.
	Name string

	// Index holds array index; may be negative, meaning position relative to array end.
	// Negative index is resolved during traversal against current array length, never here.
	Index int

	// IsIndex tells whether segment is array index rather than property name.
	IsIndex bool
}

// Property returns property name segment.
func Property(name string) Segment { return Segment{Name: name} }

// Index returns array index segment.
func Index(i int) Segment { return Segment{Index: i, IsIndex: true} }

// Scanner is entity that has ability to read path expression left to right,
// producing segments one at a time. Scanner can not be resumed after error
// and can be restarted only by creating new one.
type Scanner struct {
	path string
	pos  int
}

// NewScanner returns pointer to Scanner over given path expression.
func NewScanner(path string) *Scanner { return &Scanner{path: path} }

// Next produces next segment of path expression.
// Second return value tells whether segment was produced; it is false when path
// is exhausted or when empty property segment ends the stream.
// Error is returned only for invalid syntax of index segment.
func (s *Scanner) Next() (Segment, bool, error) {
	if s.pos >= len(s.path) {
		return Segment{}, false, nil
	}

	if s.path[s.pos] == '[' {
		seg, err := s.scanIndex()
		if err != nil {
			return Segment{}, false, err
		}

		s.skipSeparator()

		return seg, true, nil
	}

	seg, ok := s.scanProperty()
	if !ok {
		s.pos = len(s.path)

		return Segment{}, false, nil
	}

	s.skipSeparator()

	return seg, true, nil
}

// Parse produces all segments of path expression at once.
func Parse(path string) ([]Segment, error) {
	var segments []Segment

	s := NewScanner(path)
	for {
		seg, ok, err := s.Next()
		if err != nil {
			return nil, err
		}

		if !ok {
			return segments, nil
		}

		segments = append(segments, seg)
	}
}

// scanIndex reads index segment "[n]" starting at current position.
func (s *Scanner) scanIndex() (Segment, error) {
	start := s.pos

	end := strings.IndexByte(s.path[s.pos:], ']')
	if end == -1 {
		return Segment{}, fmt.Errorf("%w: unterminated index bracket at position %d", ErrMalformedPath, start)
	}

	content := s.path[s.pos+1 : s.pos+end]
	if strings.HasPrefix(content, "+") {
		return Segment{}, fmt.Errorf("%w: invalid index %q at position %d", ErrMalformedPath, content, start)
	}

	i, err := strconv.Atoi(content)
	if err != nil {
		return Segment{}, fmt.Errorf("%w: invalid index %q at position %d", ErrMalformedPath, content, start)
	}

	s.pos += end + 1

	return Index(i), nil
}

// scanProperty reads maximal run of characters not equal to unescaped "." or "[",
// resolving escape sequences. Property name stays a view into original path unless
// escape forces building new string.
func (s *Scanner) scanProperty() (Segment, bool) {
	var b *strings.Builder

	start := s.pos
	i := s.pos

	for i < len(s.path) {
		c := s.path[i]
		if c == '.' || c == '[' {
			break
		}

		if c == '\\' && i+1 < len(s.path) {
			if b == nil {
				b = &strings.Builder{}
				b.WriteString(s.path[start:i])
			}

			i++
			b.WriteByte(s.path[i])
			i++

			continue
		}

		if b != nil {
			b.WriteByte(c)
		}

		i++
	}

	name := s.path[start:i]
	if b != nil {
		name = b.String()
	}

	s.pos = i

	if len(name) == 0 {
		return Segment{}, false
	}

	return Property(name), true
}

// skipSeparator consumes single "." separator following just produced segment.
func (s *Scanner) skipSeparator() {
	if s.pos < len(s.path) && s.path[s.pos] == '.' {
		s.pos++
	}
}
