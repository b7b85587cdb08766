// Package qpath provides single-result path queries over in-memory JSON-like trees.
//
// Path expression uses "." separated property names and "[n]" / "[-n]" bracketed
// integer indices, with "\" as escape character for literal "." and "[" inside
// property names:
//
//	store.books[-1].price
//
// Query may be issued against two tree representations implementing node.Node capability:
//
// node.View - read-only view backed by pre-parsed buffer over original JSON bytes,
// node.Tree - owning map[string]any / []any graph built from JSON or YAML document.
//
// Node under path may be located:
//
//	func Select(root node.Node, path string, opts ...Option) (node.Node, bool, error)
//
// or located and coerced into requested type:
//
//	func Get[T any](root node.Node, path string, opts ...Option) (T, bool, error)
//
// Second return value tells whether node was found and coerced; missing property,
// out of range index, navigation through non-object/non-array node and failed
// coercion all yield false, never an error. Error is returned only for path
// expression with invalid syntax, see segment.ErrMalformedPath.
//
// Common scalar targets (string, int, int32, int64, float64, decimal.Decimal, bool,
// time.Time, uuid.UUID, node.Node itself and any) are extracted directly; every other
// target type is delegated to serializer.Deserializer, which may be replaced:
//
//	v, ok, err := qpath.Get[Book](root, "store.books[0]", qpath.WithDeserializer(serializer.NewYAMLFormatter()))
//
// Parsed form of path expression may be reused between queries by attaching cache:
//
//	c := cache.NewConcurrentCache()
//	v, ok, err := qpath.Get[float64](root, "store.books[-1].price", qpath.WithCache(c))
package qpath
