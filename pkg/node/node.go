// Package node holds minimal navigation capability over in-memory JSON-like trees.
//
// Package contains two implementations of Node capability:
//
// View - read-only, non-owning node backed by pre-parsed buffer over original JSON bytes,
// Tree - owning node over independently allocated map[string]any / []any graph.
//
// Both implementations expose only raw, non-negative indexed access plus current
// collection length; negative index resolution and range semantics belong to
// the traversal algorithm consuming them.
package node

import "errors"

// ErrInvalidDocument tells that given bytes do not form valid document.
var ErrInvalidDocument = errors.New("invalid document")

// Kind represents kind of node of JSON-like tree.
type Kind string

const (
	Object  Kind = "object"
	Array   Kind = "array"
	String  Kind = "string"
	Number  Kind = "number"
	Boolean Kind = "boolean"
	Null    Kind = "null"

	// Unknown represents node of unclassifiable kind.
	Unknown Kind = "unknown"
)

// Node describes minimal capability tree representation must expose to be navigable.
type Node interface {
	// Kind returns kind of current node.
	Kind() Kind

	// Property returns node preserved under given property name of object node.
	Property(name string) (Node, bool)

	// Element returns node under given non-negative index of array node.
	Element(i int) (Node, bool)

	// Len returns current length of array node, 0 for any other kind.
	Len() int

	// Value returns materialized Go value of node.
	Value() any

	// Raw returns JSON encoding of subtree rooted at node.
	Raw() ([]byte, error)
}
