package qpath

import (
	"math"
	"reflect"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pawelWritesCode/qpath/pkg/node"
)

// Get locates node under given path expression and coerces it into T.
// Second return value tells whether node was found and coerced; path that does not
// resolve and node that can not be coerced into T are reported identically as false.
// Error is returned only for path expression with invalid syntax.
func Get[T any](root node.Node, path string, opts ...Option) (T, bool, error) {
	var zero T

	s := newSettings(opts)

	segments, err := s.parse(path)
	if err != nil {
		return zero, false, err
	}

	located, found := navigate(root, segments)
	if !found {
		return zero, false, nil
	}

	v, ok := coerce[T](located, s)
	if !ok {
		return zero, false, nil
	}

	return v, true, nil
}

// coerce converts located node into T: common scalars are extracted directly,
// every other target type is delegated to configured deserializer.
// Failure of either route is reported as false, never as panic.
func coerce[T any](n node.Node, s settings) (T, bool) {
	var out T

	// the node itself and its materialized value are handed over regardless of kind
	switch p := any(&out).(type) {
	case *node.Node:
		*p = n

		return out, true
	case *any:
		*p = n.Value()

		return out, true
	}

	if n.Kind() == node.Null {
		return out, acceptsAbsence[T]()
	}

	switch p := any(&out).(type) {
	case *string:
		v, ok := asString(n)
		if !ok {
			return out, false
		}
		*p = v
	case *int:
		v, ok := asInt64(n)
		if !ok {
			return out, false
		}
		*p = int(v)
	case *int32:
		v, ok := asInt64(n)
		if !ok || v < math.MinInt32 || v > math.MaxInt32 {
			return out, false
		}
		*p = int32(v)
	case *int64:
		v, ok := asInt64(n)
		if !ok {
			return out, false
		}
		*p = v
	case *float64:
		v, ok := asFloat64(n)
		if !ok {
			return out, false
		}
		*p = v
	case *bool:
		v, ok := asBool(n)
		if !ok {
			return out, false
		}
		*p = v
	case *decimal.Decimal:
		v, ok := asDecimal(n)
		if !ok {
			return out, false
		}
		*p = v
	case *time.Time:
		v, ok := asTime(n)
		if !ok {
			return out, false
		}
		*p = v
	case *uuid.UUID:
		v, ok := asUUID(n)
		if !ok {
			return out, false
		}
		*p = v
	default:
		raw, err := n.Raw()
		if err != nil {
			return out, false
		}

		if err := s.deserializer.Deserialize(raw, &out); err != nil {
			return out, false
		}
	}

	return out, true
}

// acceptsAbsence tells whether T semantically accepts absence of value,
// that is whether T is nil-able Go type.
func acceptsAbsence[T any]() bool {
	k := reflect.TypeOf((*T)(nil)).Elem().Kind()

	return k == reflect.Ptr || k == reflect.Interface || k == reflect.Map || k == reflect.Slice
}

func asString(n node.Node) (string, bool) {
	switch v := n.Value().(type) {
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	}

	return "", false
}

func asInt64(n node.Node) (int64, bool) {
	switch v := n.Value().(type) {
	case float64:
		i := int64(v)
		if float64(i) != v {
			return 0, false
		}

		return i, true
	case int64:
		return v, true
	case uint64:
		if v > math.MaxInt64 {
			return 0, false
		}

		return int64(v), true
	case int:
		return int64(v), true
	case string:
		i, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, false
		}

		return i, true
	}

	return 0, false
}

func asFloat64(n node.Node) (float64, bool) {
	switch v := n.Value().(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	case uint64:
		return float64(v), true
	case int:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}

		return f, true
	}

	return 0, false
}

func asBool(n node.Node) (bool, bool) {
	switch v := n.Value().(type) {
	case bool:
		return v, true
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return false, false
		}

		return b, true
	}

	return false, false
}

func asDecimal(n node.Node) (decimal.Decimal, bool) {
	switch v := n.Value().(type) {
	case float64:
		return decimal.NewFromFloat(v), true
	case int64:
		return decimal.NewFromInt(v), true
	case int:
		return decimal.NewFromInt(int64(v)), true
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Decimal{}, false
		}

		return d, true
	}

	return decimal.Decimal{}, false
}

func asTime(n node.Node) (time.Time, bool) {
	v, ok := n.Value().(string)
	if !ok {
		return time.Time{}, false
	}

	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}

func asUUID(n node.Node) (uuid.UUID, bool) {
	v, ok := n.Value().(string)
	if !ok {
		return uuid.UUID{}, false
	}

	id, err := uuid.Parse(v)
	if err != nil {
		return uuid.UUID{}, false
	}

	return id, true
}
