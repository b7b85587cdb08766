package cache

import (
	"fmt"
	"sync"

	"github.com/pawelWritesCode/qpath/pkg/segment"
)

// ConcurrentCache is entity that has ability to store and retrieve parsed form of path expressions.
// Safe for concurrent use.
type ConcurrentCache struct {
	buff sync.Map
}

// NewConcurrentCache returns pointer to ConcurrentCache safe for concurrent use.
func NewConcurrentCache() *ConcurrentCache { return &ConcurrentCache{buff: sync.Map{}} }

func (c *ConcurrentCache) Save(path string, segments []segment.Segment) {
	c.buff.Store(path, segments)
}

func (c *ConcurrentCache) GetSaved(path string) ([]segment.Segment, error) {
	val, ok := c.buff.Load(path)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingKey, path)
	}

	segments, ok := val.([]segment.Segment)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingKey, path)
	}

	return segments, nil
}

func (c *ConcurrentCache) Reset() {
	c.buff = sync.Map{}
}

// All returns all currently preserved parsed paths.
func (c *ConcurrentCache) All() map[string][]segment.Segment {
	tmpMap := make(map[string][]segment.Segment)
	c.buff.Range(func(key, value any) bool {
		keyStr, ok := key.(string)
		if !ok {
			return true
		}

		segments, ok := value.([]segment.Segment)
		if !ok {
			return true
		}

		tmpMap[keyStr] = segments

		return true
	})

	return tmpMap
}
