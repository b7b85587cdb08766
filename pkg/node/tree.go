package node

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
)

// Tree is owning node over map[string]any / []any graph, as produced by
// deserializing JSON or YAML document. Underlying graph may be mutated by other
// collaborators between queries; Tree itself only reads it. It is caller's
// responsibility to avoid structural mutation of the graph while it is being queried.
type Tree struct {
	v any
}

// FromJSON deserializes JSON document into owning graph and returns Tree over it.
func FromJSON(b []byte) (Tree, error) {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return Tree{}, fmt.Errorf("%w: %s", ErrInvalidDocument, err.Error())
	}

	return Tree{v: v}, nil
}

// FromYAML deserializes YAML document into owning graph and returns Tree over it.
func FromYAML(b []byte) (Tree, error) {
	var v any
	if err := yaml.Unmarshal(b, &v); err != nil {
		return Tree{}, fmt.Errorf("%w: %s", ErrInvalidDocument, err.Error())
	}

	return Tree{v: v}, nil
}

// Wrap returns Tree over already built graph.
func Wrap(v any) Tree { return Tree{v: v} }

// Kind returns kind of current node.
func (t Tree) Kind() Kind {
	return KindOf(t.v)
}

// Property returns node preserved under given property name of object node.
func (t Tree) Property(name string) (Node, bool) {
	m, ok := t.v.(map[string]any)
	if !ok {
		return nil, false
	}

	v, ok := m[name]
	if !ok {
		return nil, false
	}

	return Tree{v: v}, true
}

// Element returns node under given non-negative index of array node.
func (t Tree) Element(i int) (Node, bool) {
	elements, ok := t.v.([]any)
	if !ok {
		return nil, false
	}

	if i < 0 || i >= len(elements) {
		return nil, false
	}

	return Tree{v: elements[i]}, true
}

// Len returns current length of array node, 0 for any other kind.
func (t Tree) Len() int {
	if elements, ok := t.v.([]any); ok {
		return len(elements)
	}

	return 0
}

// Value returns materialized Go value of node.
func (t Tree) Value() any {
	return t.v
}

// Raw returns JSON encoding of subtree rooted at node.
func (t Tree) Raw() ([]byte, error) {
	return json.Marshal(t.v)
}
