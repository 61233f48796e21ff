// Package boolean provides checks and helpers for boolean values.
//
// The Is* checks accept any value and never fail: a value of the wrong type
// is simply reported as not matching. Named types whose underlying type is
// bool are treated as booleans.
//
// Truthiness follows the usual dynamic-language rules mapped onto Go values:
// nil, false, numeric zero, NaN, the empty string and nil pointers, maps,
// slices, channels and funcs are falsy; everything else is truthy.
package boolean
