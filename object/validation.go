// Package object holds checks for plain key-value records. In Go those are
// maps: structs, slices and arrays are not plain records.
package object

import "reflect"

// IsObject reports whether value is a non-nil map.
//
//	IsObject(map[string]any{}) // true
//	IsObject([]any{})          // false
//	IsObject(nil)              // false
func IsObject(value any) bool {
	if value == nil {
		return false
	}
	rv := reflect.ValueOf(value)
	return rv.Kind() == reflect.Map && !rv.IsNil()
}

// Has reports whether m has an entry for key.
func Has[K comparable, V any](m map[K]V, key K) bool {
	_, ok := m[key]
	return ok
}

// HasKey reports whether obj is a map with an entry for key. It answers
// false when obj is not a map or key cannot be used as one of its keys.
func HasKey(obj, key any) bool {
	if !IsObject(obj) || key == nil {
		return false
	}
	rv := reflect.ValueOf(obj)
	kv := reflect.ValueOf(key)
	kt := rv.Type().Key()
	switch {
	case kv.Type().AssignableTo(kt):
	case kv.Type().ConvertibleTo(kt) && kv.Kind() == kt.Kind():
		kv = kv.Convert(kt)
	default:
		return false
	}
	return rv.MapIndex(kv).IsValid()
}

// Lookup returns the entry of m for key narrowed to V. The boolean is false
// when the key is missing or holds a value of another type.
func Lookup[V any](m map[string]any, key string) (V, bool) {
	raw, ok := m[key]
	if !ok {
		var zero V
		return zero, false
	}
	v, ok := raw.(V)
	return v, ok
}
