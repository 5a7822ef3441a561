// Package idset implements the candidate sets used by multi-dimensional
// query composition, backed by 32-bit roaring bitmaps.
package idset

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/probekit/obscube/model"
)

// Set is a deduplicated set of RecordIDs. It wraps the official roaring
// implementation; RecordIDs are strictly 32-bit by construction.
type Set struct {
	rb *roaring.Bitmap
}

// New creates a new empty set.
func New() *Set {
	return &Set{rb: roaring.New()}
}

// FromSlice creates a set holding every id in ids.
func FromSlice(ids []model.RecordID) *Set {
	s := New()
	for _, id := range ids {
		s.rb.Add(uint32(id))
	}
	return s
}

// Add adds a RecordID to the set.
func (s *Set) Add(id model.RecordID) {
	s.rb.Add(uint32(id))
}

// Contains checks if a RecordID is in the set.
func (s *Set) Contains(id model.RecordID) bool {
	return s.rb.Contains(uint32(id))
}

// IsEmpty returns true if the set is empty.
func (s *Set) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Cardinality returns the number of elements in the set.
func (s *Set) Cardinality() uint64 {
	return s.rb.GetCardinality()
}

// And computes the intersection with other in place.
func (s *Set) And(other *Set) {
	s.rb.And(other.rb)
}

// Or computes the union with other in place.
func (s *Set) Or(other *Set) {
	s.rb.Or(other.rb)
}

// Iterator returns an iterator over the set in ascending RecordID order.
func (s *Set) Iterator() iter.Seq[model.RecordID] {
	return func(yield func(model.RecordID) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(model.RecordID(it.Next())) {
				return
			}
		}
	}
}

// Slice returns the set contents in ascending RecordID order.
func (s *Set) Slice() []model.RecordID {
	out := make([]model.RecordID, 0, s.rb.GetCardinality())
	for id := range s.Iterator() {
		out = append(out, id)
	}
	return out
}

// Intersect returns the intersection of all sets, evaluated smallest
// cardinality first to minimize comparison cost. The inputs are not
// modified. Intersecting zero sets yields nil; correctness does not depend
// on evaluation order.
func Intersect(sets ...*Set) *Set {
	if len(sets) == 0 {
		return nil
	}

	smallest := 0
	for i, s := range sets {
		if s.Cardinality() < sets[smallest].Cardinality() {
			smallest = i
		}
	}

	out := &Set{rb: sets[smallest].rb.Clone()}
	for i, s := range sets {
		if i == smallest {
			continue
		}
		out.rb.And(s.rb)
		if out.rb.IsEmpty() {
			break
		}
	}
	return out
}
