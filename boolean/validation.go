package boolean

import (
	"math"
	"reflect"
)

// IsBoolean reports whether value is a boolean.
func IsBoolean(value any) bool {
	_, ok := asBool(value)
	return ok
}

// IsTrue reports whether value is the boolean true.
// Truthy values of other types do not count.
func IsTrue(value any) bool {
	b, ok := asBool(value)
	return ok && b
}

// IsFalse reports whether value is the boolean false.
// Falsy values of other types do not count.
func IsFalse(value any) bool {
	b, ok := asBool(value)
	return ok && !b
}

// IsNotTrue reports whether value is anything but the boolean true.
func IsNotTrue(value any) bool {
	return !IsTrue(value)
}

// IsNotFalse reports whether value is anything but the boolean false.
func IsNotFalse(value any) bool {
	return !IsFalse(value)
}

// IsTruthy reports whether value is truthy. See the package documentation
// for the exact rules.
func IsTruthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case int:
		return v != 0
	case float64:
		return v != 0 && !math.IsNaN(v)
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Complex64, reflect.Complex128:
		return rv.Complex() != 0
	case reflect.String:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return !rv.IsNil()
	default:
		return true
	}
}

// IsFalsy reports whether value is falsy.
func IsFalsy(value any) bool {
	return !IsTruthy(value)
}

func asBool(value any) (bool, bool) {
	if b, ok := value.(bool); ok {
		return b, true
	}
	if value == nil {
		return false, false
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Bool {
		return false, false
	}
	return rv.Bool(), true
}
