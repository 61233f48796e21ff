package strutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type name string

func TestIsString(t *testing.T) {
	t.Parallel()

	assert.True(t, IsString("hello"))
	assert.True(t, IsString(""))
	assert.True(t, IsString(name("bob")))
	assert.False(t, IsString(123))
	assert.False(t, IsString(nil))
	assert.False(t, IsString([]byte("hello")))

	assert.True(t, IsEmptyString(""))
	assert.True(t, IsEmptyString(name("")))
	assert.False(t, IsEmptyString("hello"))
	assert.False(t, IsEmptyString(0))
	assert.False(t, IsEmptyString(nil))
}

func TestWhitespaces(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input      string
		whitespace bool
		blank      bool
	}{
		{"", false, true},
		{"  ", true, true},
		{"\t\n", true, true},
		{"hola", false, false},
		{" hola ", false, false},
		{"\uFEFF", true, true},
		{"\u00A0\u2028\u3000", true, true},
		{"\u0085", false, false},
		{"\u200B", false, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.whitespace, IsWhitespaces(tt.input), "IsWhitespaces(%q)", tt.input)
		assert.Equal(t, tt.blank, IsEmptyOrWhitespaces(tt.input), "IsEmptyOrWhitespaces(%q)", tt.input)
	}
}

func TestPrefix(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Nice", Prefix("ice", "N"))
	assert.Equal(t, "#42", Prefix(42, "#"))
	assert.Equal(t, "v1.5", Prefix(1.5, name("v")))
	assert.Equal(t, "1true", Prefix(true, 1))

	assert.True(t, IsPrefixed("Nice", "N"))
	assert.True(t, IsPrefixed("Nice", ""))
	assert.False(t, IsPrefixed("Nice", ":)"))
}

func TestEnsurePrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input  string
		prefix string
		want   string
	}{
		{"Ice", "N", "NIce"},
		{"Nice", "N", "Nice"},
		{"", "v", "v"},
		{"1.0.0", "v", "v1.0.0"},
		{"v1.0.0", "v", "v1.0.0"},
		{"abc", "", "abc"},
	}

	for _, tt := range tests {
		got := EnsurePrefix(tt.input, tt.prefix)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, got, EnsurePrefix(got, tt.prefix), "EnsurePrefix must be idempotent")
	}
}
