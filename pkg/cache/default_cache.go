package cache

import (
	"fmt"

	"github.com/pawelWritesCode/qpath/pkg/segment"
)

// DefaultCache is entity that has ability to store and retrieve parsed form of path expressions.
// Not safe for concurrent use.
type DefaultCache struct {
	buff map[string][]segment.Segment
}

// NewDefaultCache returns pointer to DefaultCache not safe for concurrent use.
func NewDefaultCache() *DefaultCache {
	return &DefaultCache{buff: map[string][]segment.Segment{}}
}

// Save preserves parsed form of path expression under raw path string.
func (c *DefaultCache) Save(path string, segments []segment.Segment) {
	c.buff[path] = segments
}

// GetSaved returns preserved parsed form if present, error otherwise.
func (c *DefaultCache) GetSaved(path string) ([]segment.Segment, error) {
	segments, ok := c.buff[path]

	if ok == false {
		return nil, fmt.Errorf("%w: %s", ErrMissingKey, path)
	}

	return segments, nil
}

// Reset turns cache into initial state - clears all entries.
func (c *DefaultCache) Reset() {
	c.buff = map[string][]segment.Segment{}
}

// All returns all currently preserved parsed paths.
func (c *DefaultCache) All() map[string][]segment.Segment {
	return c.buff
}
