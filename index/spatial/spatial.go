// Package spatial adapts an external balanced R-tree to the cube's needs:
// point insertion and inclusive axis-aligned rectangle retrieval.
//
// The adapter never performs distance or polygon math; the query engine
// applies exact geometric tests to the rectangle candidate set.
package spatial

import (
	"github.com/tidwall/rtree"

	"github.com/probekit/obscube/model"
)

// Index stores (latitude, longitude) points keyed to RecordIDs. Coordinates
// are planar degrees in [lat, lon] axis order throughout.
type Index struct {
	tr rtree.RTreeG[model.RecordID]
}

// New creates an empty spatial index.
func New() *Index {
	return &Index{}
}

// InsertPoint adds a degenerate (point) rectangle for id. O(log n).
func (x *Index) InsertPoint(lat, lon float64, id model.RecordID) {
	pt := [2]float64{lat, lon}
	x.tr.Insert(pt, pt, id)
}

// SearchRect returns the ids of all points within the inclusive rectangle,
// in unspecified order. O(log n + k).
func (x *Index) SearchRect(minLat, minLon, maxLat, maxLon float64) []model.RecordID {
	var out []model.RecordID
	x.tr.Search([2]float64{minLat, minLon}, [2]float64{maxLat, maxLon},
		func(_, _ [2]float64, id model.RecordID) bool {
			out = append(out, id)
			return true
		})
	return out
}

// Len returns the number of indexed points.
func (x *Index) Len() int { return x.tr.Len() }
