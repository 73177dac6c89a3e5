// SPDX-License-Identifier: MIT

package container

import "github.com/cespare/xxhash/v2"

// entry is one key/value pair in a bucket. Only the key takes part in
// equality and hashing.
type entry[K comparable, V any] struct {
	key   K
	value V
}

// HashMap is a separate-chaining hash map over a fixed number of buckets.
//
// Layout:
//
//	buckets: Sequence[ *Chain[*entry] ]   (len == bucket count, never resized)
//	index  : hash(key) mod bucket count
//
// Lookups cost O(1) on average and O(bucket length) in the worst case.
// Without rehashing, the average bucket length grows linearly with Len().
type HashMap[K comparable, V any] struct {
	buckets *Sequence[*Chain[*entry[K, V]]]
	hash    Hasher[K]
	size    int
}

// NewHashMap returns an empty map that buckets keys with hash.
// It panics if hash is nil.
// Complexity: O(buckets).
func NewHashMap[K comparable, V any](hash Hasher[K], opts ...MapOption) *HashMap[K, V] {
	if hash == nil {
		panic("container: NewHashMap: nil Hasher")
	}
	cfg := mapConfig{buckets: DefaultBuckets}
	for _, opt := range opts {
		opt(&cfg)
	}
	buckets := NewSequence[*Chain[*entry[K, V]]](WithCapacity(cfg.buckets))
	for i := 0; i < cfg.buckets; i++ {
		buckets.Append(NewChain[*entry[K, V]]())
	}

	return &HashMap[K, V]{buckets: buckets, hash: hash}
}

// NewStringMap returns an empty map keyed by strings, hashed with xxhash.
func NewStringMap[V any](opts ...MapOption) *HashMap[string, V] {
	return NewHashMap[string, V](xxhash.Sum64String, opts...)
}

// Put associates v with k. An existing key keeps its position in the bucket
// and only has its value replaced; Len is unchanged in that case.
func (m *HashMap[K, V]) Put(k K, v V) {
	b := m.bucket(k)
	if e := find(b, k); e != nil {
		e.value = v

		return
	}
	b.Append(&entry[K, V]{key: k, value: v})
	m.size++
}

// Get returns the value stored under k and whether k is present.
func (m *HashMap[K, V]) Get(k K) (V, bool) {
	if e := find(m.bucket(k), k); e != nil {
		return e.value, true
	}
	var zero V

	return zero, false
}

// ContainsKey reports whether k is present.
func (m *HashMap[K, V]) ContainsKey(k K) bool {
	return find(m.bucket(k), k) != nil
}

// Len returns the number of distinct keys.
func (m *HashMap[K, V]) Len() int { return m.size }

// BucketCount returns the fixed number of buckets.
func (m *HashMap[K, V]) BucketCount() int { return m.buckets.Len() }

// Keys returns a snapshot of all keys in bucket order, then chain order
// within each bucket. This is not insertion order.
func (m *HashMap[K, V]) Keys() *Sequence[K] {
	keys := NewSequence[K]()
	for _, b := range m.buckets.All() {
		for e := range b.All() {
			keys.Append(e.key)
		}
	}

	return keys
}

// bucket selects the chain for k. The hash is unsigned, so the modulo result
// is always a valid bucket index.
func (m *HashMap[K, V]) bucket(k K) *Chain[*entry[K, V]] {
	idx := int(m.hash(k) % uint64(m.buckets.Len()))
	b, _ := m.buckets.Get(idx)

	return b
}

// find scans b for an entry with key k.
func find[K comparable, V any](b *Chain[*entry[K, V]], k K) *entry[K, V] {
	for e := range b.All() {
		if e.key == k {
			return e
		}
	}

	return nil
}
