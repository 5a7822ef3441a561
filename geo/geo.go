// Package geo provides the geometric primitives behind the cube's spatial
// queries: great-circle distance, the radius → bounding-box prefilter, and
// ray-casting point-in-polygon containment.
//
// The prefilter contract is that a computed bounding box is always a
// superset of the exact answer; the exact test (Distance or PointInPolygon)
// is the sole correctness authority.
package geo

import (
	"math"

	"github.com/golang/geo/s2"

	"github.com/probekit/obscube/model"
)

const (
	// EarthRadiusMeters is the mean Earth radius used for all distance math.
	EarthRadiusMeters = 6371000.0

	// metersPerDegreeLat approximates one degree of latitude. Used only for
	// the conservative prefilter, never for the exact test.
	metersPerDegreeLat = 111000.0
)

// Bounds is an inclusive axis-aligned rectangle in degrees.
type Bounds struct {
	MinLat, MinLon float64
	MaxLat, MaxLon float64
}

// Distance returns the great-circle distance in meters between two
// coordinates, computed with the haversine formula on a sphere of
// EarthRadiusMeters.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	a := s2.LatLngFromDegrees(lat1, lon1)
	b := s2.LatLngFromDegrees(lat2, lon2)
	return a.Distance(b).Radians() * EarthRadiusMeters
}

// RadiusBounds returns a bounding box guaranteed to contain every point
// within radiusM meters of the center. The latitude delta uses the flat
// meters-per-degree approximation; the longitude delta is widened by
// 1/cos(lat) since longitude degrees shrink away from the equator. Near the
// poles the widening degrades to the full longitude span, keeping the
// superset guarantee at the cost of precision.
func RadiusBounds(lat, lon, radiusM float64) Bounds {
	dLat := radiusM / metersPerDegreeLat

	dLon := 180.0
	if c := math.Cos(lat * math.Pi / 180); c > 1e-9 {
		dLon = math.Min(dLat/c, 180.0)
	}

	return Bounds{
		MinLat: lat - dLat,
		MinLon: lon - dLon,
		MaxLat: lat + dLat,
		MaxLon: lon + dLon,
	}
}

// PolygonBounds returns the bounding box of the polygon's vertices.
func PolygonBounds(vertices []model.LatLon) Bounds {
	b := Bounds{
		MinLat: math.Inf(1), MinLon: math.Inf(1),
		MaxLat: math.Inf(-1), MaxLon: math.Inf(-1),
	}
	for _, v := range vertices {
		b.MinLat = math.Min(b.MinLat, v.Lat)
		b.MaxLat = math.Max(b.MaxLat, v.Lat)
		b.MinLon = math.Min(b.MinLon, v.Lon)
		b.MaxLon = math.Max(b.MaxLon, v.Lon)
	}
	return b
}

// PointInPolygon reports whether (lat, lon) lies inside the simple polygon
// given as an ordered vertex sequence, implicitly closed. It casts a
// horizontal ray and counts edge crossings in planar degree space; an odd
// count means inside.
//
// Points exactly on an edge or vertex have implementation-defined inclusion;
// this is a known numerical ambiguity of ray casting, not a contract.
func PointInPolygon(lat, lon float64, vertices []model.LatLon) bool {
	inside := false
	n := len(vertices)

	j := n - 1
	for i := 0; i < n; i++ {
		vi, vj := vertices[i], vertices[j]
		if (vi.Lon > lon) != (vj.Lon > lon) &&
			lat < (vj.Lat-vi.Lat)*(lon-vi.Lon)/(vj.Lon-vi.Lon)+vi.Lat {
			inside = !inside
		}
		j = i
	}

	return inside
}
