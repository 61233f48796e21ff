// Package number classifies numeric values and converts between 0-based
// indexes and 1-based ordinals.
package number

import (
	"math"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Number is any integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// IsNumber reports whether value is an integer or floating-point number,
// including named numeric types.
func IsNumber(value any) bool {
	if value == nil {
		return false
	}
	switch reflect.ValueOf(value).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// IsPositive reports whether value > 0.
func IsPositive[T Number](value T) bool {
	return value > 0
}

// IsNegative reports whether value < 0.
func IsNegative[T Number](value T) bool {
	return value < 0
}

// IsZero reports whether value == 0.
func IsZero[T Number](value T) bool {
	return value == 0
}

// IsNonNegative reports whether value >= 0.
//
//	IsNonNegative(-1) // false
//	IsNonNegative(0)  // true
func IsNonNegative[T Number](value T) bool {
	return value >= 0
}

// IsNonPositive reports whether value <= 0.
func IsNonPositive[T Number](value T) bool {
	return value <= 0
}

// IsInteger reports whether value has no fractional part. Integer types are
// always integers; NaN and the infinities are not.
func IsInteger[T Number](value T) bool {
	f := float64(value)
	if math.IsInf(f, 0) {
		return false
	}
	return f == math.Trunc(f)
}

// IsFloat reports whether value is not an integer, see IsInteger.
func IsFloat[T Number](value T) bool {
	return !IsInteger(value)
}

// IsDefinedIndex reports whether index can address an element, i.e. it is
// not negative.
func IsDefinedIndex[T Number](index T) bool {
	return IsNonNegative(index)
}
