package node

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// View is read-only node backed by pre-parsed gjson result over original JSON bytes.
// View does not own the tree and never mutates it, so it may be queried concurrently.
type View struct {
	r gjson.Result
}

// ParseView validates given bytes and returns View over whole document.
func ParseView(b []byte) (View, error) {
	if !gjson.ValidBytes(b) {
		return View{}, fmt.Errorf("%w: detected invalid JSON", ErrInvalidDocument)
	}

	return View{r: gjson.ParseBytes(b)}, nil
}

// Kind returns kind of current node.
func (v View) Kind() Kind {
	switch v.r.Type {
	case gjson.Null:
		return Null
	case gjson.False, gjson.True:
		return Boolean
	case gjson.Number:
		return Number
	case gjson.String:
		return String
	case gjson.JSON:
		if v.r.IsArray() {
			return Array
		}

		if v.r.IsObject() {
			return Object
		}
	}

	return Unknown
}

// Property returns node under given property name of object node.
// Name is matched literally, never interpreted as nested expression.
func (v View) Property(name string) (Node, bool) {
	if !v.r.IsObject() {
		return nil, false
	}

	var res gjson.Result
	var found bool

	v.r.ForEach(func(key, value gjson.Result) bool {
		if key.String() == name {
			res = value
			found = true

			return false
		}

		return true
	})

	if !found {
		return nil, false
	}

	return View{r: res}, true
}

// Element returns node under given non-negative index of array node.
func (v View) Element(i int) (Node, bool) {
	if !v.r.IsArray() {
		return nil, false
	}

	elements := v.r.Array()
	if i < 0 || i >= len(elements) {
		return nil, false
	}

	return View{r: elements[i]}, true
}

// Len returns current length of array node, 0 for any other kind.
func (v View) Len() int {
	if !v.r.IsArray() {
		return 0
	}

	return len(v.r.Array())
}

// Value returns materialized Go value of node.
func (v View) Value() any {
	return v.r.Value()
}

// Raw returns JSON encoding of subtree rooted at node.
// For View it is a slice of the original document, no re-encoding happens.
func (v View) Raw() ([]byte, error) {
	return []byte(v.r.Raw), nil
}
