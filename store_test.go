// FILE: lixenwraith/benchconf/store_test.go
package benchconf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValuesBasics tests get/set/has/update semantics of the value store
func TestValuesBasics(t *testing.T) {
	t.Run("AbsentKey", func(t *testing.T) {
		v := NewValues(nil)
		val, ok := v.Get("missing")
		assert.False(t, ok)
		assert.Nil(t, val)
		assert.False(t, v.Has("missing"))
	})

	t.Run("SetAndGet", func(t *testing.T) {
		v := NewValues(nil)
		v.Set("nthreads", 4)
		val, ok := v.Get("nthreads")
		require.True(t, ok)
		assert.Equal(t, 4, val)
	})

	t.Run("CaseSensitiveKeys", func(t *testing.T) {
		v := NewValues(map[string]any{"Wdir": "/a"})
		assert.True(t, v.Has("Wdir"))
		assert.False(t, v.Has("wdir"))
	})

	t.Run("UpdateLastWriteWins", func(t *testing.T) {
		v := NewValues(map[string]any{"a": 1, "b": 2})
		v.Update(map[string]any{"b": 3, "c": 4})
		assert.Equal(t, map[string]any{"a": 1, "b": 3, "c": 4}, v.Map())
	})

	t.Run("UnsetIsPresent", func(t *testing.T) {
		v := NewValues(nil)
		v.Set("logdir", Unset)
		val, ok := v.Get("logdir")
		assert.True(t, ok)
		assert.True(t, IsUnset(val))
	})

	t.Run("KeysSorted", func(t *testing.T) {
		v := NewValues(map[string]any{"z": 1, "a": 2, "m": 3})
		assert.Equal(t, []string{"a", "m", "z"}, v.Keys())
		assert.Equal(t, 3, v.Len())
	})
}

// TestValuesSub tests section-scoped sub-stores
func TestValuesSub(t *testing.T) {
	root := NewValues(nil)
	assert.False(t, root.HasSub("creat"))

	creat := root.Sub("creat")
	creat.Set("opcnt", []int{10})
	assert.True(t, root.HasSub("creat"))
	assert.Same(t, creat, root.Sub("creat"), "Sub must return the existing store")

	root.Sub("mkdir")
	assert.Equal(t, []string{"creat", "mkdir"}, root.SubNames())
	assert.False(t, root.Has("opcnt"), "section keys must not leak into the parent")
}

// TestValuesCopies tests that Map and Clone never alias stored slices
func TestValuesCopies(t *testing.T) {
	v := NewValues(map[string]any{"fsize": []int64{1024}, "meta": []string{"mkdir"}})

	m := v.Map()
	m["fsize"].([]int64)[0] = 1
	m["meta"].([]string)[0] = "rmdir"

	sizes, err := v.Sizes("fsize")
	require.NoError(t, err)
	assert.Equal(t, []int64{1024}, sizes)

	ops, err := v.Ops("meta")
	require.NoError(t, err)
	assert.Equal(t, []string{"mkdir"}, ops)

	v.Sub("read").Set("bsize", []int64{4096})
	clone := v.Clone()
	clone.Sub("read").Set("bsize", []int64{1})
	orig, _ := v.Sub("read").Sizes("bsize")
	assert.Equal(t, []int64{4096}, orig)
}

// TestValuesTypedAccessors tests the conversion getters
func TestValuesTypedAccessors(t *testing.T) {
	v := NewValues(map[string]any{
		"nthreads": 4,
		"count":    "12",
		"dryrun":   false,
		"confirm":  "True",
		"logdir":   Unset,
		"flags":    Bitmask(0o101),
		"mode":     "r",
		"opcnt":    []int{1, 2},
	})

	n, err := v.Int("nthreads")
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	n, err = v.Int("count")
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	b, err := v.Bool("confirm")
	require.NoError(t, err)
	assert.True(t, b)

	s, err := v.String("logdir")
	require.NoError(t, err)
	assert.Equal(t, "", s)

	s, err = v.String("nthreads")
	require.NoError(t, err)
	assert.Equal(t, "4", s)

	mask, evaluated, err := v.Bits("flags")
	require.NoError(t, err)
	assert.True(t, evaluated)
	assert.Equal(t, Bitmask(0o101), mask)

	_, evaluated, err = v.Bits("mode")
	require.NoError(t, err)
	assert.False(t, evaluated)

	ints, err := v.Ints("opcnt")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, ints)

	_, err = v.Int("missing")
	assert.Error(t, err)
	_, err = v.Sizes("opcnt")
	assert.Error(t, err)
	_, err = v.Bool("opcnt")
	assert.Error(t, err)
}
