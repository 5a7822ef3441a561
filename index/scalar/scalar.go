// Package scalar provides an ordered index over a totally ordered scalar
// dimension, shared by the signal-strength (int8) and timestamp (int64)
// dimensions of a cube.
//
// Architecture:
//   - buckets: key → insertion-ordered RecordID slice
//   - keys: sorted distinct keys, maintained incrementally on Add
//   - binary search on keys for range boundaries
//
// Range queries cost O(log n + k) where k is the number of matches: two
// binary searches locate the key span, then buckets are concatenated in
// ascending key order, preserving insertion order within each key.
package scalar

import (
	"cmp"
	"slices"

	"github.com/probekit/obscube/model"
)

// Index is an ordered bucket index keyed by K.
type Index[K cmp.Ordered] struct {
	keys    []K
	buckets map[K][]model.RecordID
	entries int
}

// New creates an empty index.
func New[K cmp.Ordered]() *Index[K] {
	return &Index[K]{buckets: make(map[K][]model.RecordID)}
}

// Add appends id to the bucket for key, creating the bucket if absent.
// O(log n) to locate the key, O(n) worst case when a new key lands in the
// middle of the key set; appends of monotonically increasing keys (the
// common case for timestamps) stay O(1) amortized.
func (x *Index[K]) Add(key K, id model.RecordID) {
	bucket, ok := x.buckets[key]
	if !ok {
		pos, _ := slices.BinarySearch(x.keys, key)
		x.keys = slices.Insert(x.keys, pos, key)
	}
	x.buckets[key] = append(bucket, id)
	x.entries++
}

// Exact returns the bucket for key, or nil if the key is unseen.
// The returned slice is owned by the index and must not be mutated.
func (x *Index[K]) Exact(key K) []model.RecordID {
	return x.buckets[key]
}

// Range returns all ids with key in [min, max], both ends inclusive, in
// ascending key order with insertion order preserved within each key.
// A min greater than max yields an empty result, not an error.
func (x *Index[K]) Range(min, max K) []model.RecordID {
	if min > max {
		return nil
	}
	lo, _ := slices.BinarySearch(x.keys, min)
	hi, found := slices.BinarySearch(x.keys, max)
	if found {
		hi++
	}
	return x.collect(lo, hi)
}

// GreaterThan returns all ids with key strictly greater than v.
func (x *Index[K]) GreaterThan(v K) []model.RecordID {
	lo, found := slices.BinarySearch(x.keys, v)
	if found {
		lo++
	}
	return x.collect(lo, len(x.keys))
}

// AtLeast returns all ids with key greater than or equal to v.
func (x *Index[K]) AtLeast(v K) []model.RecordID {
	lo, _ := slices.BinarySearch(x.keys, v)
	return x.collect(lo, len(x.keys))
}

// LessThan returns all ids with key strictly less than v.
func (x *Index[K]) LessThan(v K) []model.RecordID {
	hi, _ := slices.BinarySearch(x.keys, v)
	return x.collect(0, hi)
}

// AtMost returns all ids with key less than or equal to v.
func (x *Index[K]) AtMost(v K) []model.RecordID {
	hi, found := slices.BinarySearch(x.keys, v)
	if found {
		hi++
	}
	return x.collect(0, hi)
}

// Keys returns the distinct keys in ascending order. The returned slice is
// owned by the index and must not be mutated.
func (x *Index[K]) Keys() []K { return x.keys }

// Len returns the total number of indexed entries across all buckets.
func (x *Index[K]) Len() int { return x.entries }

// collect concatenates the buckets for keys[lo:hi] in key order.
func (x *Index[K]) collect(lo, hi int) []model.RecordID {
	if lo >= hi {
		return nil
	}
	var out []model.RecordID
	for _, key := range x.keys[lo:hi] {
		out = append(out, x.buckets[key]...)
	}
	return out
}
