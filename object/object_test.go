package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type key string

func TestIsObject(t *testing.T) {
	t.Parallel()

	assert.True(t, IsObject(map[string]any{}))
	assert.True(t, IsObject(map[int]string{1: "a"}))
	assert.False(t, IsObject(map[string]any(nil)))
	assert.False(t, IsObject(nil))
	assert.False(t, IsObject([]any{}))
	assert.False(t, IsObject([2]int{}))
	assert.False(t, IsObject(struct{ A int }{}))
	assert.False(t, IsObject(&map[string]any{}))
	assert.False(t, IsObject("map"))
}

func TestHas(t *testing.T) {
	t.Parallel()

	obj := map[string]int{"a": 1, "b": 2}
	assert.True(t, Has(obj, "a"))
	assert.False(t, Has(obj, "c"))
	assert.False(t, Has(map[string]int(nil), "a"))

	assert.True(t, HasKey(obj, "a"))
	assert.True(t, HasKey(obj, key("b")))
	assert.False(t, HasKey(obj, "c"))
	assert.False(t, HasKey(obj, 1))
	assert.False(t, HasKey(obj, nil))
	assert.False(t, HasKey([]string{"a"}, 0))
	assert.True(t, HasKey(map[any]any{1: nil}, 1))
}

func TestLookup(t *testing.T) {
	t.Parallel()

	obj := map[string]any{"port": 8080, "host": "localhost"}

	port, ok := Lookup[int](obj, "port")
	assert.True(t, ok)
	assert.Equal(t, 8080, port)

	_, ok = Lookup[string](obj, "port")
	assert.False(t, ok)

	_, ok = Lookup[string](obj, "missing")
	assert.False(t, ok)
}
