package obscube

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by Get for a RecordID outside [0, Len).
	ErrNotFound = errors.New("record not found")

	// ErrNoFilters is returned by QueryMulti when no filter dimension is
	// provided. Requiring at least one filter avoids an accidental
	// full-store scan.
	ErrNoFilters = errors.New("multi query requires at least one filter")
)

// ErrInvalidPolygon indicates a polygon query with fewer than 3 vertices.
type ErrInvalidPolygon struct {
	Vertices int
}

func (e *ErrInvalidPolygon) Error() string {
	return fmt.Sprintf("invalid polygon: %d vertices, need at least 3", e.Vertices)
}
