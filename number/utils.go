package number

// IndexToNumber converts a 0-based index to its 1-based ordinal.
func IndexToNumber[T Number](index T) T {
	return index + 1
}

// NumberToIndex converts a 1-based ordinal to its 0-based index.
func NumberToIndex[T Number](number T) T {
	return number - 1
}
