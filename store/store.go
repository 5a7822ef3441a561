// Package store provides the append-only primary store for observations.
//
// A record's position at insertion time is its permanent RecordID. The store
// never reorders, compacts, or removes records; whole-structure teardown is
// the only destruction event.
package store

import (
	"github.com/probekit/obscube/model"
)

// Store is an append-only ordered sequence of observations.
//
// Not safe for concurrent mutation; callers must impose a single-writer
// discipline around the owning cube.
type Store struct {
	records []model.Observation
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// NewWithCapacity creates an empty store preallocated for n records.
// The hint is non-binding.
func NewWithCapacity(n int) *Store {
	return &Store{records: make([]model.Observation, 0, n)}
}

// Append adds an observation and returns its permanent RecordID, in O(1)
// amortized.
func (s *Store) Append(obs model.Observation) model.RecordID {
	id := model.RecordID(len(s.records))
	s.records = append(s.records, obs)
	return id
}

// Get returns the observation for id. The second return is false when id is
// outside [0, Len).
func (s *Store) Get(id model.RecordID) (model.Observation, bool) {
	if int(id) >= len(s.records) {
		return model.Observation{}, false
	}
	return s.records[int(id)], true
}

// Len returns the number of stored records.
func (s *Store) Len() int { return len(s.records) }

// IsEmpty reports whether the store holds no records.
func (s *Store) IsEmpty() bool { return len(s.records) == 0 }
