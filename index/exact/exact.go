// Package exact provides the exact-match index over source identifiers.
//
// It follows the bucket-of-ids-per-key pattern: each distinct SourceID maps
// to the ordered sequence of RecordIDs observed for it. An empty result for
// an unseen key is not an error.
package exact

import (
	"slices"

	"github.com/probekit/obscube/model"
)

// Index maps a SourceID to the insertion-ordered bucket of RecordIDs
// sharing it. Average O(1) insert and lookup.
type Index struct {
	buckets map[model.SourceID][]model.RecordID
}

// New creates an empty index.
func New() *Index {
	return &Index{buckets: make(map[model.SourceID][]model.RecordID)}
}

// NewWithCapacity creates an empty index sized for roughly n distinct keys.
func NewWithCapacity(n int) *Index {
	return &Index{buckets: make(map[model.SourceID][]model.RecordID, n)}
}

// Add appends id to the bucket for source, creating the bucket if absent.
// Callers must add ids in insertion order to preserve bucket stability.
func (x *Index) Add(source model.SourceID, id model.RecordID) {
	x.buckets[source] = append(x.buckets[source], id)
}

// Lookup returns the bucket for source, or nil if the key is unseen.
// The returned slice is owned by the index and must not be mutated.
func (x *Index) Lookup(source model.SourceID) []model.RecordID {
	return x.buckets[source]
}

// Keys returns every distinct SourceID seen, sorted lexicographically.
func (x *Index) Keys() []model.SourceID {
	keys := make([]model.SourceID, 0, len(x.buckets))
	for k := range x.buckets {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, model.SourceID.Compare)
	return keys
}

// Len returns the number of distinct keys.
func (x *Index) Len() int { return len(x.buckets) }
