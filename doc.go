// Package obscube provides an in-memory multi-dimensional index over radio
// observation records.
//
// A Cube indexes a stream of short fixed-shape observations — signal
// strength, a 48-bit source identifier, a timestamp, and a geographic
// coordinate — and serves point, range, and spatial queries with sub-linear
// cost at a scale of tens of millions of records.
//
// # Quick Start
//
//	cube := obscube.New()
//
//	src, _ := model.ParseSourceID("aa:bb:cc:dd:ee:ff")
//	id := cube.Insert(model.Observation{
//	    Signal:    -65,
//	    Source:    src,
//	    Timestamp: 1700000000,
//	    Lat:       37.7749,
//	    Lon:       -122.4194,
//	})
//
//	obs, _ := cube.Get(id)
//	hits := cube.QueryRadius(37.7749, -122.4194, 5000)
//
// # Architecture
//
// One append-only record store plus four secondary indices, kept in sync by
// the single coordinated insert path:
//
//   - source identifier → hash index (O(1) point lookup)
//   - signal strength   → ordered index (O(log n + k) ranges)
//   - timestamp         → ordered index (O(log n + k) ranges)
//   - coordinate        → R-tree (O(log n + k) rectangles)
//
// Geographic radius and polygon queries use an approximate-then-exact
// pattern: a conservative bounding-box prefilter against the R-tree, then a
// haversine or ray-casting exact test. Multi-dimensional queries intersect
// per-dimension candidate sets as roaring bitmaps, smallest set first.
//
// # Concurrency
//
// A Cube is not safe for concurrent mutation. Insert updates five structures
// non-atomically with respect to each other, so callers needing concurrent
// access must impose an external single-writer/multiple-reader discipline
// (for example a sync.RWMutex around the whole cube). Queries are pure reads
// and may run concurrently with each other.
package obscube
