// Package cache holds utilities for storing parsed form of path expressions.
package cache

import (
	"errors"

	"github.com/pawelWritesCode/qpath/pkg/segment"
)

// ErrMissingKey occurs when cache doesn't have any parsed path under given key.
var ErrMissingKey = errors.New("missing key")

// Cache describes ability to store and retrieve parsed form of path expression
// keyed by raw path string.
type Cache interface {
	// Save preserves parsed form of path expression under raw path string.
	Save(path string, segments []segment.Segment)

	// GetSaved returns preserved parsed form if present, error otherwise.
	GetSaved(path string) ([]segment.Segment, error)

	// Reset turns cache into initial state - clears all entries.
	Reset()
}
