package model

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// RecordID is the stable identifier of an observation: its zero-based
// insertion rank in the record store. IDs are never reused or recycled;
// the valid ID space is exactly [0, store length).
//
// It is strictly 32-bit so hot-path candidate sets can use roaring bitmaps,
// allowing for max 4 billion records per cube.
type RecordID uint32

// SourceID is the fixed 6-byte (48-bit) identifier of a transmitter, e.g. a
// BLE or Wi-Fi MAC address. It is an opaque equality-comparable key, not a
// numeric value.
type SourceID [6]byte

// String returns the conventional colon-separated hex form, e.g.
// "aa:bb:cc:dd:ee:ff".
func (s SourceID) String() string {
	var b strings.Builder
	b.Grow(17)
	for i, octet := range s {
		if i > 0 {
			b.WriteByte(':')
		}
		b.WriteString(hex.EncodeToString([]byte{octet}))
	}
	return b.String()
}

// Compare lexicographically compares two source identifiers, returning
// -1, 0, or +1.
func (s SourceID) Compare(other SourceID) int {
	for i := range s {
		switch {
		case s[i] < other[i]:
			return -1
		case s[i] > other[i]:
			return 1
		}
	}
	return 0
}

// ParseSourceID parses a source identifier from colon- or dash-separated
// hex form ("aa:bb:cc:dd:ee:ff", "AA-BB-CC-DD-EE-FF") or 12 plain hex digits.
func ParseSourceID(s string) (SourceID, error) {
	cleaned := strings.NewReplacer(":", "", "-", "").Replace(s)
	if len(cleaned) != 12 {
		return SourceID{}, fmt.Errorf("parse source id %q: want 6 octets", s)
	}
	raw, err := hex.DecodeString(cleaned)
	if err != nil {
		return SourceID{}, fmt.Errorf("parse source id %q: %w", s, err)
	}
	var id SourceID
	copy(id[:], raw)
	return id, nil
}

// Observation is a single signal reading. It is immutable once inserted.
type Observation struct {
	// Signal is the received signal strength. The conventional RSSI domain
	// is -103..0 dBm but the cube does not range-enforce it.
	Signal int8

	// Source identifies the transmitter the reading was taken from.
	Source SourceID

	// Timestamp is a caller-defined epoch value (seconds vs. microseconds is
	// a caller convention; the cube only orders it).
	Timestamp int64

	// Lat and Lon are WGS84 degrees. Out-of-range coordinates are accepted
	// without validation.
	Lat float64
	Lon float64
}

// LatLon is a geographic coordinate in degrees.
type LatLon struct {
	Lat float64
	Lon float64
}

// Record pairs a RecordID with its materialized observation. Query results
// are returned as records so callers can correlate hits across dimensions.
type Record struct {
	ID RecordID
	Observation
}
