package obscube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/probekit/obscube/geo"
	"github.com/probekit/obscube/model"
)

func TestQueryRadius(t *testing.T) {
	cube := New()

	sf := cube.Insert(model.Observation{Signal: -60, Source: srcA, Lat: 37.7749, Lon: -122.4194})
	oakland := cube.Insert(model.Observation{Signal: -60, Source: srcA, Lat: 37.8044, Lon: -122.2712})
	cube.Insert(model.Observation{Signal: -60, Source: srcA, Lat: 40.7128, Lon: -74.0060}) // NYC

	t.Run("SmallRadiusExcludesNeighbors", func(t *testing.T) {
		hits := cube.QueryRadius(37.7749, -122.4194, 5000)
		require.Len(t, hits, 1)
		assert.Equal(t, sf, hits[0].ID)
	})

	t.Run("LargerRadiusIncludesOakland", func(t *testing.T) {
		hits := cube.QueryRadius(37.7749, -122.4194, 20000)
		assert.ElementsMatch(t, []model.RecordID{sf, oakland}, recordIDs(hits))
	})

	t.Run("FarCenterExcludesAll", func(t *testing.T) {
		// ~20 km north of SF with a 5 km radius.
		assert.Empty(t, cube.QueryRadius(37.9549, -122.4194, 5000))
	})

	t.Run("ZeroRadiusMatchesExactPoint", func(t *testing.T) {
		hits := cube.QueryRadius(37.7749, -122.4194, 0)
		require.Len(t, hits, 1)
		assert.Equal(t, sf, hits[0].ID)
	})
}

// TestQueryRadius_Boundary pins the inclusive <= contract: a point at
// exactly the queried distance matches, a point just beyond does not.
func TestQueryRadius_Boundary(t *testing.T) {
	cube := New()
	center := model.LatLon{Lat: 37.0, Lon: -122.0}
	point := model.LatLon{Lat: 37.05, Lon: -122.0}

	cube.Insert(model.Observation{Source: srcA, Lat: point.Lat, Lon: point.Lon})
	dist := geo.Distance(center.Lat, center.Lon, point.Lat, point.Lon)

	assert.Len(t, cube.QueryRadius(center.Lat, center.Lon, dist), 1)
	assert.Empty(t, cube.QueryRadius(center.Lat, center.Lon, dist-0.01))
}

func TestQueryBBox(t *testing.T) {
	cube := New()
	in := cube.Insert(model.Observation{Source: srcA, Lat: 5, Lon: 5})
	cube.Insert(model.Observation{Source: srcA, Lat: 15, Lon: 5})

	hits := cube.QueryBBox(0, 0, 10, 10)
	require.Len(t, hits, 1)
	assert.Equal(t, in, hits[0].ID)

	// Bounds are inclusive.
	corner := cube.Insert(model.Observation{Source: srcA, Lat: 10, Lon: 10})
	assert.Contains(t, recordIDs(cube.QueryBBox(0, 0, 10, 10)), corner)
}

func TestQueryPolygon(t *testing.T) {
	cube := New()
	inside := cube.Insert(model.Observation{Source: srcA, Lat: 5, Lon: 5})
	// East of the polygon, and a point the bbox prefilter admits but the
	// exact test must judge.
	cube.Insert(model.Observation{Source: srcA, Lat: 5, Lon: 15})
	nearMiss := cube.Insert(model.Observation{Source: srcA, Lat: 9, Lon: 9.5})

	square := []model.LatLon{
		{Lat: 0, Lon: 0},
		{Lat: 0, Lon: 10},
		{Lat: 10, Lon: 10},
		{Lat: 10, Lon: 0},
	}

	hits, err := cube.QueryPolygon(square)
	require.NoError(t, err)
	assert.Contains(t, recordIDs(hits), inside)
	assert.Contains(t, recordIDs(hits), nearMiss)
	assert.Len(t, hits, 2)

	t.Run("ConcaveExcludesNotch", func(t *testing.T) {
		// Square with a triangular notch reaching the center from the east.
		notched := []model.LatLon{
			{Lat: 0, Lon: 0},
			{Lat: 10, Lon: 0},
			{Lat: 10, Lon: 10},
			{Lat: 5, Lon: 5.5},
			{Lat: 0, Lon: 10},
		}
		hits, err := cube.QueryPolygon(notched)
		require.NoError(t, err)
		assert.Contains(t, recordIDs(hits), inside)
		assert.NotContains(t, recordIDs(hits), nearMiss)
	})

	t.Run("TooFewVertices", func(t *testing.T) {
		_, err := cube.QueryPolygon(square[:2])
		var perr *ErrInvalidPolygon
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, 2, perr.Vertices)
	})
}

func TestQueryMulti(t *testing.T) {
	cube := New()

	// Three observations: only #1 matches all dimensions at once.
	cube.Insert(model.Observation{Signal: -90, Source: srcA, Timestamp: 100, Lat: 37.77, Lon: -122.41})
	match := cube.Insert(model.Observation{Signal: -65, Source: srcA, Timestamp: 200, Lat: 37.78, Lon: -122.42})
	cube.Insert(model.Observation{Signal: -60, Source: srcB, Timestamp: 300, Lat: 40.71, Lon: -74.00})

	t.Run("AllDimensions", func(t *testing.T) {
		hits, err := cube.QueryMulti(MultiQuery{
			Source: &srcA,
			Signal: &SignalRange{Min: -80, Max: -60},
			Time:   &TimeRange{Start: 150, End: 250},
			Geo:    GeoRadius(37.7749, -122.4194, 10000),
		})
		require.NoError(t, err)
		require.Len(t, hits, 1)
		assert.Equal(t, match, hits[0].ID)
	})

	t.Run("WideFilterDoesNotNarrow", func(t *testing.T) {
		// A signal range excluding all but one record, a time range
		// including everything.
		hits, err := cube.QueryMulti(MultiQuery{
			Signal: &SignalRange{Min: -70, Max: -62},
			Time:   &TimeRange{Start: 0, End: 1000},
		})
		require.NoError(t, err)
		require.Len(t, hits, 1)
		assert.Equal(t, match, hits[0].ID)
	})

	t.Run("GeoBBoxFilter", func(t *testing.T) {
		hits, err := cube.QueryMulti(MultiQuery{
			Geo: GeoBBox(37.0, -123.0, 38.0, -122.0),
		})
		require.NoError(t, err)
		assert.Len(t, hits, 2)
	})

	t.Run("GeoPolygonFilter", func(t *testing.T) {
		hits, err := cube.QueryMulti(MultiQuery{
			Source: &srcA,
			Geo: GeoPolygon([]model.LatLon{
				{Lat: 37, Lon: -123},
				{Lat: 37, Lon: -122},
				{Lat: 38, Lon: -122},
				{Lat: 38, Lon: -123},
			}),
		})
		require.NoError(t, err)
		assert.Len(t, hits, 2)
	})

	t.Run("NoFilters", func(t *testing.T) {
		_, err := cube.QueryMulti(MultiQuery{})
		require.ErrorIs(t, err, ErrNoFilters)
	})

	t.Run("InvalidPolygonFilter", func(t *testing.T) {
		_, err := cube.QueryMulti(MultiQuery{
			Geo: GeoPolygon([]model.LatLon{{Lat: 1, Lon: 1}}),
		})
		var perr *ErrInvalidPolygon
		require.ErrorAs(t, err, &perr)
	})

	t.Run("DisjointFiltersYieldEmpty", func(t *testing.T) {
		hits, err := cube.QueryMulti(MultiQuery{
			Source: &srcB,
			Time:   &TimeRange{Start: 0, End: 150},
		})
		require.NoError(t, err)
		assert.Empty(t, hits)
	})
}

// TestQueryMulti_MatchesManualIntersection checks that the composed result
// equals the intersection of each individually-run filter, for every
// combination of provided filters.
func TestQueryMulti_MatchesManualIntersection(t *testing.T) {
	cube := New()

	signals := []int8{-90, -80, -70, -60, -50}
	for i := 0; i < 40; i++ {
		src := srcA
		if i%3 == 0 {
			src = srcB
		}
		cube.Insert(model.Observation{
			Signal:    signals[i%len(signals)],
			Source:    src,
			Timestamp: int64(1000 + i*10),
			Lat:       37.0 + float64(i)*0.01,
			Lon:       -122.0 - float64(i)*0.01,
		})
	}

	sigRange := &SignalRange{Min: -80, Max: -60}
	timeRange := &TimeRange{Start: 1050, End: 1300}
	geoFilter := GeoRadius(37.1, -122.1, 25000)

	sigIDs := toSet(recordIDs(cube.QuerySignalRange(sigRange.Min, sigRange.Max)))
	timeIDs := toSet(recordIDs(cube.QueryTimeRange(timeRange.Start, timeRange.End)))
	geoIDs := toSet(recordIDs(cube.QueryRadius(37.1, -122.1, 25000)))
	srcIDs := toSet(recordIDs(cube.QuerySource(srcA)))

	cases := []struct {
		name   string
		query  MultiQuery
		expect map[model.RecordID]bool
	}{
		{"signal+time", MultiQuery{Signal: sigRange, Time: timeRange}, intersect(sigIDs, timeIDs)},
		{"signal+geo", MultiQuery{Signal: sigRange, Geo: geoFilter}, intersect(sigIDs, geoIDs)},
		{"source+time+geo", MultiQuery{Source: &srcA, Time: timeRange, Geo: geoFilter}, intersect(srcIDs, timeIDs, geoIDs)},
		{"all four", MultiQuery{Source: &srcA, Signal: sigRange, Time: timeRange, Geo: geoFilter}, intersect(srcIDs, sigIDs, timeIDs, geoIDs)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			hits, err := cube.QueryMulti(tc.query)
			require.NoError(t, err)

			got := toSet(recordIDs(hits))
			assert.Equal(t, tc.expect, got)

			// Results are ascending and deduplicated.
			ids := recordIDs(hits)
			for i := 1; i < len(ids); i++ {
				assert.Less(t, ids[i-1], ids[i])
			}
		})
	}
}

func toSet(ids []model.RecordID) map[model.RecordID]bool {
	set := make(map[model.RecordID]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func intersect(sets ...map[model.RecordID]bool) map[model.RecordID]bool {
	out := make(map[model.RecordID]bool)
	if len(sets) == 0 {
		return out
	}
	for id := range sets[0] {
		inAll := true
		for _, s := range sets[1:] {
			if !s[id] {
				inAll = false
				break
			}
		}
		if inAll {
			out[id] = true
		}
	}
	return out
}
