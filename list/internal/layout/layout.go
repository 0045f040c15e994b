// Package layout provides the size arithmetic and element-type checks behind
// the list's raw-memory backing.
package layout

import (
	"math"
	"reflect"
)

// SafeMul64 multiplies two non-negative sizes, reporting overflow.
func SafeMul64(a, b int64) (int64, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if b != 0 && a > math.MaxInt64/b {
		return 0, false
	}
	return a * b, true
}

// SafeAdd64 adds two non-negative sizes, reporting overflow.
func SafeAdd64(a, b int64) (int64, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a > math.MaxInt64-b {
		return 0, false
	}
	return a + b, true
}

// HasPointers reports whether values of t contain pointers the garbage
// collector would need to scan. Containers backed by raw allocator blocks
// must reject such types.
func HasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && HasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if HasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		// Ptr, UnsafePointer, Map, Slice, String, Chan, Func, Interface.
		return true
	}
}
