package boolean

// Negate returns the negation of value.
//
//	Negate(true)  // false
//	Negate(false) // true
func Negate[T ~bool](value T) T {
	return !value
}

// Not is an alias of Negate that reads better inside conditions.
func Not[T ~bool](value T) T {
	return Negate(value)
}
