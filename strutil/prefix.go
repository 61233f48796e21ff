package strutil

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Stringable is any value whose default formatting is its string form.
type Stringable interface {
	~string | ~bool | constraints.Integer | constraints.Float
}

// Prefix returns input with prefix prepended.
//
//	Prefix("ice", "N") // "Nice"
//	Prefix(42, "#")    // "#42"
func Prefix[I, P Stringable](input I, prefix P) string {
	return fmt.Sprint(prefix) + fmt.Sprint(input)
}

// IsPrefixed reports whether input starts with prefix.
func IsPrefixed(input, prefix string) bool {
	return strings.HasPrefix(input, prefix)
}

// EnsurePrefix returns input prefixed with prefix unless it already is.
// Applying it twice gives the same result as applying it once.
//
//	EnsurePrefix("Ice", "N")  // "NIce"
//	EnsurePrefix("Nice", "N") // "Nice"
func EnsurePrefix(input, prefix string) string {
	if IsPrefixed(input, prefix) {
		return input
	}
	return Prefix(input, prefix)
}
