package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruthyCombinators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		conditions    []any
		oneOf         bool
		allOf         bool
		oneOfIsFalsy  bool
		allOfAreFalsy bool
	}{
		{"empty", nil, false, true, false, true},
		{"all truthy", []any{true, 12, ":)"}, true, true, false, false},
		{"mixed", []any{true, ""}, true, false, true, false},
		{"all falsy", []any{false, "", 0, nil}, false, false, true, true},
		{"null and undefined", []any{IsNull(Null), IsUndefined(Null)}, true, false, true, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.oneOf, OneOf(tt.conditions...), "OneOf")
			assert.Equal(t, tt.oneOf, OneOfIsTruthy(tt.conditions...), "OneOfIsTruthy")
			assert.Equal(t, tt.allOf, AllOf(tt.conditions...), "AllOf")
			assert.Equal(t, tt.allOf, AllOfAreTruthy(tt.conditions...), "AllOfAreTruthy")
			assert.Equal(t, tt.oneOfIsFalsy, OneOfIsFalsy(tt.conditions...), "OneOfIsFalsy")
			assert.Equal(t, tt.allOfAreFalsy, AllOfAreFalsy(tt.conditions...), "AllOfAreFalsy")
		})
	}
}

func TestStrictCombinators(t *testing.T) {
	t.Parallel()

	assert.True(t, OneOfIsTrue(true, false, 1))
	assert.False(t, OneOfIsTrue(false, 123, ":)"))

	assert.True(t, OneOfIsNotTrue(true, "", 0))
	assert.False(t, OneOfIsNotTrue(true, true))

	assert.True(t, AllOfAreTrue(true, true))
	assert.False(t, AllOfAreTrue(true, 123, ":)"))

	assert.True(t, NoneOfIsTrue(false, 0, ""))
	assert.False(t, NoneOfIsTrue(true, false))

	assert.True(t, OneOfIsFalse(false, true))
	assert.False(t, OneOfIsFalse(true, 0, ""))

	assert.True(t, OneOfIsNotFalse(false, 0, ""))
	assert.False(t, OneOfIsNotFalse(false, false))

	assert.True(t, AllOfAreFalse(false, false))
	assert.False(t, AllOfAreFalse(false, 0, ""))

	assert.True(t, NoneOfAreFalse(true, 0, ""))
	assert.False(t, NoneOfAreFalse(false, 0, ""))
}
