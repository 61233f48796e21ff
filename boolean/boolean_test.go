package boolean

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type flag bool

func TestNegate(t *testing.T) {
	t.Parallel()

	assert.False(t, Negate(true))
	assert.True(t, Negate(false))
	assert.Equal(t, flag(false), Not(flag(true)))

	for _, v := range []bool{true, false} {
		assert.Equal(t, v, Negate(Negate(v)), "double negation of %v", v)
	}
}

func TestStrictChecks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		value      any
		isBoolean  bool
		isTrue     bool
		isFalse    bool
		isNotTrue  bool
		isNotFalse bool
	}{
		{"true", true, true, true, false, false, true},
		{"false", false, true, false, true, true, false},
		{"named true", flag(true), true, true, false, false, true},
		{"named false", flag(false), true, false, true, true, false},
		{"nil", nil, false, false, false, true, true},
		{"one", 1, false, false, false, true, true},
		{"zero", 0, false, false, false, true, true},
		{"string", "anything-else", false, false, false, true, true},
		{"empty string", "", false, false, false, true, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.isBoolean, IsBoolean(tt.value), "IsBoolean")
			assert.Equal(t, tt.isTrue, IsTrue(tt.value), "IsTrue")
			assert.Equal(t, tt.isFalse, IsFalse(tt.value), "IsFalse")
			assert.Equal(t, tt.isNotTrue, IsNotTrue(tt.value), "IsNotTrue")
			assert.Equal(t, tt.isNotFalse, IsNotFalse(tt.value), "IsNotFalse")
		})
	}
}

func TestIsTruthy(t *testing.T) {
	t.Parallel()

	var nilPtr *int
	var nilMap map[string]int
	var nilSlice []int
	one := 1

	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"nil", nil, false},
		{"false", false, false},
		{"true", true, true},
		{"zero int", 0, false},
		{"int", 12, true},
		{"zero uint8", uint8(0), false},
		{"int64", int64(-3), true},
		{"zero float", 0.0, false},
		{"NaN", math.NaN(), false},
		{"float32", float32(0.5), true},
		{"empty string", "", false},
		{"string", ":)", true},
		{"nil pointer", nilPtr, false},
		{"pointer", &one, true},
		{"nil map", nilMap, false},
		{"empty map", map[string]int{}, true},
		{"nil slice", nilSlice, false},
		{"empty slice", []int{}, true},
		{"struct", struct{}{}, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsTruthy(tt.value))
			assert.Equal(t, !tt.want, IsFalsy(tt.value))
		})
	}
}
