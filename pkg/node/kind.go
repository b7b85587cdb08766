package node

import "reflect"

// KindOf maps underlying Go data type into corresponding node Kind.
func KindOf(data any) Kind {
	if data == nil {
		return Null
	}

	v := reflect.ValueOf(data)

	if v.Kind() == reflect.String {
		return String
	}

	if isValueNil(v) {
		return Null
	}

	if v.Kind() == reflect.Int64 || v.Kind() == reflect.Int32 || v.Kind() == reflect.Int16 ||
		v.Kind() == reflect.Int8 || v.Kind() == reflect.Int || v.Kind() == reflect.Uint ||
		v.Kind() == reflect.Uint8 || v.Kind() == reflect.Uint16 || v.Kind() == reflect.Uint32 ||
		v.Kind() == reflect.Uint64 || v.Kind() == reflect.Float32 || v.Kind() == reflect.Float64 {
		return Number
	}

	if v.Kind() == reflect.Bool {
		return Boolean
	}

	if v.Kind() == reflect.Map || v.Kind() == reflect.Struct {
		return Object
	}

	if v.Kind() == reflect.Slice || v.Kind() == reflect.Array {
		return Array
	}

	return Unknown
}

// isValueNil checks whether provided Value holds nil of nil-able kind.
func isValueNil(v reflect.Value) bool {
	k := v.Kind()
	if k == reflect.Ptr || k == reflect.Map || k == reflect.Chan ||
		k == reflect.Slice || k == reflect.Func || k == reflect.Interface {
		return v.IsNil()
	}

	return false
}
