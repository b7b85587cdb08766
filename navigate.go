package qpath

import (
	"github.com/pawelWritesCode/qpath/pkg/node"
	"github.com/pawelWritesCode/qpath/pkg/segment"
)

// navigate applies each segment in order against root and returns final located node.
// It short-circuits on first segment that does not resolve, without backtracking.
// Empty segments list resolves to root itself.
//
// Algorithm is written once and drives any node.Node implementation.
func navigate(root node.Node, segments []segment.Segment) (node.Node, bool) {
	current := root

	for _, seg := range segments {
		next, ok := advance(current, seg)
		if !ok {
			return nil, false
		}

		current = next
	}

	return current, true
}

// advance resolves single segment against current node.
// Negative index is resolved against current length of the array being indexed,
// at the moment the segment is evaluated.
func advance(current node.Node, seg segment.Segment) (node.Node, bool) {
	if seg.IsIndex {
		if current.Kind() != node.Array {
			return nil, false
		}

		i := seg.Index
		if i < 0 {
			i += current.Len()
		}

		if i < 0 || i >= current.Len() {
			return nil, false
		}

		return current.Element(i)
	}

	if current.Kind() != node.Object {
		return nil, false
	}

	return current.Property(seg.Name)
}
