package common

import (
	"reflect"

	"github.com/gnoswap-labs/flex/boolean"
)

// Null is an explicit null. It is a typed nil, so IsNull(Null) is true while
// IsUndefined(Null) is false.
var Null *struct{}

// IsDefined reports whether value is neither null nor undefined.
func IsDefined(value any) bool {
	return boolean.Not(IsNullish(value))
}

// IsNull reports whether value is a typed nil.
//
//	IsNull(Null)          // true
//	IsNull([]int(nil))    // true
//	IsNull(nil)           // false, that is undefined
//	IsNull("anything")    // false
func IsNull(value any) bool {
	if value == nil {
		return false
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// IsUndefined reports whether value is the untyped nil.
func IsUndefined(value any) bool {
	return value == nil
}

// IsNullish reports whether value is null or undefined.
func IsNullish(value any) bool {
	return OneOf(IsNull(value), IsUndefined(value))
}

// IsOneOf reports whether value equals one of values. NaN is considered
// equal to NaN, so IsOneOf(v, []T{v}) holds for every v.
//
//	IsOneOf("apple", []string{"apple", "banana"}) // true
//	IsOneOf("orange", []string{"apple", "banana"}) // false
func IsOneOf[T comparable](value T, values []T) bool {
	for _, v := range values {
		if v == value || (v != v && value != value) {
			return true
		}
	}
	return false
}

// As returns value as a T when its dynamic type is T. It is the typed
// counterpart of the Is* checks: test first, then narrow.
//
//	if s, ok := As[string](v); ok {
//		// s is a string
//	}
func As[T any](value any) (T, bool) {
	v, ok := value.(T)
	return v, ok
}
