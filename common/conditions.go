package common

import "github.com/gnoswap-labs/flex/boolean"

// OneOf reports whether at least one of conditions is truthy.
//
//	OneOf(IsNull(v), IsUndefined(v))
func OneOf(conditions ...any) bool {
	return some(conditions, boolean.IsTruthy)
}

// OneOfIsTruthy is an alias of OneOf.
func OneOfIsTruthy(conditions ...any) bool {
	return OneOf(conditions...)
}

// AllOf reports whether all of conditions are truthy.
// It is true for an empty list.
func AllOf(conditions ...any) bool {
	return every(conditions, boolean.IsTruthy)
}

// AllOfAreTruthy is an alias of AllOf.
func AllOfAreTruthy(conditions ...any) bool {
	return AllOf(conditions...)
}

// OneOfIsFalsy reports whether at least one of conditions is falsy.
func OneOfIsFalsy(conditions ...any) bool {
	return boolean.Not(AllOf(conditions...))
}

// AllOfAreFalsy reports whether all of conditions are falsy.
func AllOfAreFalsy(conditions ...any) bool {
	return boolean.Not(OneOf(conditions...))
}

// OneOfIsTrue reports whether at least one of conditions is the boolean true.
func OneOfIsTrue(conditions ...any) bool {
	return some(conditions, boolean.IsTrue)
}

// OneOfIsNotTrue reports whether at least one of conditions is not the
// boolean true.
func OneOfIsNotTrue(conditions ...any) bool {
	return some(conditions, boolean.IsNotTrue)
}

// AllOfAreTrue reports whether all of conditions are the boolean true.
func AllOfAreTrue(conditions ...any) bool {
	return every(conditions, boolean.IsTrue)
}

// NoneOfIsTrue reports whether none of conditions is the boolean true.
func NoneOfIsTrue(conditions ...any) bool {
	return every(conditions, boolean.IsNotTrue)
}

// OneOfIsFalse reports whether at least one of conditions is the boolean
// false.
func OneOfIsFalse(conditions ...any) bool {
	return some(conditions, boolean.IsFalse)
}

// OneOfIsNotFalse reports whether at least one of conditions is not the
// boolean false.
func OneOfIsNotFalse(conditions ...any) bool {
	return some(conditions, boolean.IsNotFalse)
}

// AllOfAreFalse reports whether all of conditions are the boolean false.
func AllOfAreFalse(conditions ...any) bool {
	return every(conditions, boolean.IsFalse)
}

// NoneOfAreFalse reports whether none of conditions is the boolean false.
func NoneOfAreFalse(conditions ...any) bool {
	return every(conditions, boolean.IsNotFalse)
}

func some(conditions []any, pred func(any) bool) bool {
	for _, c := range conditions {
		if pred(c) {
			return true
		}
	}
	return false
}

func every(conditions []any, pred func(any) bool) bool {
	for _, c := range conditions {
		if !pred(c) {
			return false
		}
	}
	return true
}
