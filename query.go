package obscube

import (
	"time"

	"github.com/probekit/obscube/geo"
	"github.com/probekit/obscube/internal/idset"
	"github.com/probekit/obscube/model"
)

// QueryRadius returns all observations within radiusM meters of the center,
// by great-circle distance. The boundary is inclusive: a point at exactly
// radiusM is a match, so radius 0 matches only points at distance 0 within
// floating tolerance.
//
// A conservative bounding box prefilters R-tree candidates before the exact
// haversine test. The box is most imprecise near the poles but is always a
// superset of the exact answer.
func (c *Cube) QueryRadius(lat, lon, radiusM float64) []model.Record {
	return c.finish("geo", time.Now(), c.radiusIDs(lat, lon, radiusM))
}

// QueryBBox returns all observations within the inclusive rectangle, in
// unspecified order.
func (c *Cube) QueryBBox(minLat, minLon, maxLat, maxLon float64) []model.Record {
	return c.finish("geo", time.Now(), c.geo.SearchRect(minLat, minLon, maxLat, maxLon))
}

// QueryPolygon returns all observations inside the simple polygon given as
// an ordered vertex sequence, implicitly closed. Fewer than 3 vertices is an
// error. Points exactly on an edge or vertex have implementation-defined
// inclusion.
func (c *Cube) QueryPolygon(vertices []model.LatLon) ([]model.Record, error) {
	start := time.Now()
	ids, err := c.polygonIDs(vertices)
	if err != nil {
		return nil, err
	}
	return c.finish("geo", start, ids), nil
}

func (c *Cube) radiusIDs(lat, lon, radiusM float64) []model.RecordID {
	b := geo.RadiusBounds(lat, lon, radiusM)
	candidates := c.geo.SearchRect(b.MinLat, b.MinLon, b.MaxLat, b.MaxLon)

	out := candidates[:0]
	for _, id := range candidates {
		obs, ok := c.store.Get(id)
		if !ok {
			continue
		}
		if geo.Distance(lat, lon, obs.Lat, obs.Lon) <= radiusM {
			out = append(out, id)
		}
	}
	return out
}

func (c *Cube) polygonIDs(vertices []model.LatLon) ([]model.RecordID, error) {
	if len(vertices) < 3 {
		return nil, &ErrInvalidPolygon{Vertices: len(vertices)}
	}

	b := geo.PolygonBounds(vertices)
	candidates := c.geo.SearchRect(b.MinLat, b.MinLon, b.MaxLat, b.MaxLon)

	out := candidates[:0]
	for _, id := range candidates {
		obs, ok := c.store.Get(id)
		if !ok {
			continue
		}
		if geo.PointInPolygon(obs.Lat, obs.Lon, vertices) {
			out = append(out, id)
		}
	}
	return out, nil
}

// SignalRange is an inclusive signal-strength interval.
type SignalRange struct {
	Min, Max int8
}

// TimeRange is an inclusive timestamp interval.
type TimeRange struct {
	Start, End int64
}

// GeoFilter restricts a multi query to a geographic region. Exactly one of
// the three shapes should be set; when several are set, radius wins over
// bbox, bbox over polygon.
type GeoFilter struct {
	Radius  *RadiusFilter
	BBox    *BBoxFilter
	Polygon []model.LatLon
}

// RadiusFilter is a center point and an inclusive radius in meters.
type RadiusFilter struct {
	Lat, Lon float64
	RadiusM  float64
}

// BBoxFilter is an inclusive axis-aligned rectangle in degrees.
type BBoxFilter struct {
	MinLat, MinLon float64
	MaxLat, MaxLon float64
}

// GeoRadius builds a radius GeoFilter.
func GeoRadius(lat, lon, radiusM float64) *GeoFilter {
	return &GeoFilter{Radius: &RadiusFilter{Lat: lat, Lon: lon, RadiusM: radiusM}}
}

// GeoBBox builds a bounding-box GeoFilter.
func GeoBBox(minLat, minLon, maxLat, maxLon float64) *GeoFilter {
	return &GeoFilter{BBox: &BBoxFilter{MinLat: minLat, MinLon: minLon, MaxLat: maxLat, MaxLon: maxLon}}
}

// GeoPolygon builds a polygon GeoFilter.
func GeoPolygon(vertices []model.LatLon) *GeoFilter {
	return &GeoFilter{Polygon: vertices}
}

// MultiQuery combines per-dimension filters. Nil fields impose no
// constraint; at least one filter must be provided.
type MultiQuery struct {
	Source *model.SourceID
	Signal *SignalRange
	Time   *TimeRange
	Geo    *GeoFilter
}

// QueryMulti returns the observations matching every provided filter: the
// set intersection of the per-dimension candidate sets, deduplicated and
// ascending by RecordID. With zero filters it fails with ErrNoFilters.
//
// The intersection starts from the smallest candidate set; correctness does
// not depend on evaluation order.
func (c *Cube) QueryMulti(q MultiQuery) ([]model.Record, error) {
	start := time.Now()

	var sets []*idset.Set

	if q.Source != nil {
		sets = append(sets, idset.FromSlice(c.sources.Lookup(*q.Source)))
	}
	if q.Signal != nil {
		sets = append(sets, idset.FromSlice(c.signals.Range(q.Signal.Min, q.Signal.Max)))
	}
	if q.Time != nil {
		sets = append(sets, idset.FromSlice(c.times.Range(q.Time.Start, q.Time.End)))
	}
	if q.Geo != nil {
		ids, err := c.geoFilterIDs(q.Geo)
		if err != nil {
			c.logger.LogMultiQuery(len(sets)+1, 0, err)
			return nil, err
		}
		sets = append(sets, idset.FromSlice(ids))
	}

	if len(sets) == 0 {
		c.logger.LogMultiQuery(0, 0, ErrNoFilters)
		return nil, ErrNoFilters
	}

	recs := c.records(idset.Intersect(sets...).Slice())
	c.metrics.RecordQuery("multi", len(recs), time.Since(start))
	c.logger.LogMultiQuery(len(sets), len(recs), nil)
	return recs, nil
}

func (c *Cube) geoFilterIDs(f *GeoFilter) ([]model.RecordID, error) {
	switch {
	case f.Radius != nil:
		return c.radiusIDs(f.Radius.Lat, f.Radius.Lon, f.Radius.RadiusM), nil
	case f.BBox != nil:
		return c.geo.SearchRect(f.BBox.MinLat, f.BBox.MinLon, f.BBox.MaxLat, f.BBox.MaxLon), nil
	default:
		return c.polygonIDs(f.Polygon)
	}
}
