// Package function holds checks and helpers for func values.
package function

import "reflect"

// IsFunction reports whether value is a non-nil func.
//
//	var v any = strings.ToUpper
//	if IsFunction(v) { ... }
func IsFunction(value any) bool {
	if value == nil {
		return false
	}
	rv := reflect.ValueOf(value)
	return rv.Kind() == reflect.Func && !rv.IsNil()
}

// Invoke calls fn and returns its result. It lets a block compute a value in
// place:
//
//	limit := Invoke(func() int {
//		if fast {
//			return 100
//		}
//		return 10
//	})
func Invoke[R any](fn func() R) R {
	return fn()
}

// InvokeWith calls fn with args and returns its result.
func InvokeWith[A, R any](fn func(...A) R, args ...A) R {
	return fn(args...)
}
