// Package strutil holds string checks and prefix helpers.
package strutil

import (
	"reflect"
	"strings"
	"unicode"
)

// IsString reports whether value is a string, including named string types.
func IsString(value any) bool {
	if _, ok := value.(string); ok {
		return true
	}
	return value != nil && reflect.ValueOf(value).Kind() == reflect.String
}

// IsEmptyString reports whether value is the empty string.
func IsEmptyString(value any) bool {
	if s, ok := value.(string); ok {
		return s == ""
	}
	return IsString(value) && reflect.ValueOf(value).Len() == 0
}

// IsWhitespaces reports whether value is a non-empty string made of
// whitespace only.
//
//	IsWhitespaces("  ")   // true
//	IsWhitespaces("")     // false
//	IsWhitespaces("hola") // false
func IsWhitespaces(value string) bool {
	return len(value) > 0 && strings.TrimFunc(value, isSpace) == ""
}

// IsEmptyOrWhitespaces reports whether value is empty or made of whitespace
// only.
func IsEmptyOrWhitespaces(value string) bool {
	return strings.TrimFunc(value, isSpace) == ""
}

// isSpace matches the Unicode white space set plus the byte order mark,
// without NEL (U+0085), which is a control character.
func isSpace(r rune) bool {
	return r == '\uFEFF' || (r != '\u0085' && unicode.IsSpace(r))
}
