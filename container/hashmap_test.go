// SPDX-License-Identifier: MIT

package container_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pwbench/container"
)

// constHash sends every key to the same bucket to exercise chaining.
func constHash(string) uint64 { return 7 }

// TestHashMap_PutReplaces checks Put idempotence on an existing key.
func TestHashMap_PutReplaces(t *testing.T) {
	m := container.NewStringMap[int]()
	m.Put("weak", 1)
	require.Equal(t, 1, m.Len())

	m.Put("weak", 2)
	assert.Equal(t, 1, m.Len())
	v, ok := m.Get("weak")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
}

// TestHashMap_Absent distinguishes a zero value from a missing key.
func TestHashMap_Absent(t *testing.T) {
	m := container.NewStringMap[int]()
	m.Put("zero", 0)

	v, ok := m.Get("zero")
	assert.True(t, ok)
	assert.Equal(t, 0, v)

	_, ok = m.Get("missing")
	assert.False(t, ok)
	assert.False(t, m.ContainsKey("missing"))
	assert.True(t, m.ContainsKey("zero"))
}

// TestHashMap_Collisions forces all keys into one bucket.
func TestHashMap_Collisions(t *testing.T) {
	m := container.NewHashMap[string, int](constHash)
	for i := 0; i < 20; i++ {
		m.Put(fmt.Sprintf("k%d", i), i)
	}
	m.Put("k5", 500)
	assert.Equal(t, 20, m.Len())
	for i := 0; i < 20; i++ {
		v, ok := m.Get(fmt.Sprintf("k%d", i))
		require.True(t, ok)
		if i == 5 {
			assert.Equal(t, 500, v)
			continue
		}
		assert.Equal(t, i, v)
	}
	// single bucket: Keys follows chain (insertion) order
	keys := m.Keys().ToSlice()
	assert.Equal(t, "k0", keys[0])
	assert.Equal(t, "k19", keys[19])
}

// TestHashMap_KeysCoverEveryKey checks the snapshot holds each key once.
func TestHashMap_KeysCoverEveryKey(t *testing.T) {
	m := container.NewStringMap[bool]()
	want := []string{"very weak", "weak", "fair", "good", "very good", "unclassified"}
	for _, k := range want {
		m.Put(k, true)
		m.Put(k, true)
	}
	got := m.Keys().ToSlice()
	slices.Sort(got)
	sorted := slices.Clone(want)
	slices.Sort(sorted)
	assert.Equal(t, sorted, got)
}

// TestHashMap_Buckets covers the bucket options and constructor guards.
func TestHashMap_Buckets(t *testing.T) {
	assert.Equal(t, container.DefaultBuckets, container.NewStringMap[int]().BucketCount())

	m := container.NewHashMap[int, string](func(k int) uint64 { return uint64(k) }, container.WithBuckets(3))
	assert.Equal(t, 3, m.BucketCount())
	for i := 0; i < 10; i++ {
		m.Put(i, fmt.Sprint(i))
	}
	assert.Equal(t, 3, m.BucketCount(), "bucket count never grows")
	// bucket 0 holds 0,3,6,9 then bucket 1 holds 1,4,7 then 2,5,8
	assert.Equal(t, []int{0, 3, 6, 9, 1, 4, 7, 2, 5, 8}, m.Keys().ToSlice())

	assert.Panics(t, func() { container.WithBuckets(0) })
	assert.Panics(t, func() { container.NewHashMap[int, int](nil) })
}
