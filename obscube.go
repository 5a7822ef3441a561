package obscube

import (
	"fmt"
	"time"

	"github.com/probekit/obscube/index/exact"
	"github.com/probekit/obscube/index/scalar"
	"github.com/probekit/obscube/index/spatial"
	"github.com/probekit/obscube/model"
	"github.com/probekit/obscube/store"
)

// Cube is the owning aggregate of the record store and its four secondary
// indices. All mutation flows through Insert, which keeps every index
// synchronized with the store; the sub-containers are never exposed for
// independent mutation.
//
// Not safe for concurrent mutation — see the package documentation.
type Cube struct {
	store   *store.Store
	sources *exact.Index
	signals *scalar.Index[int8]
	times   *scalar.Index[int64]
	geo     *spatial.Index

	logger  *Logger
	metrics MetricsCollector
}

// New creates an empty cube.
func New(optFns ...Option) *Cube {
	o := applyOptions(optFns)
	return &Cube{
		store:   store.New(),
		sources: exact.New(),
		signals: scalar.New[int8](),
		times:   scalar.New[int64](),
		geo:     spatial.New(),
		logger:  o.logger,
		metrics: o.metrics,
	}
}

// WithCapacity creates an empty cube preallocated for roughly n records.
// The hint is non-binding.
func WithCapacity(n int, optFns ...Option) *Cube {
	o := applyOptions(optFns)
	return &Cube{
		store: store.NewWithCapacity(n),
		// Distinct transmitters are typically a small fraction of readings.
		sources: exact.NewWithCapacity(n / 100),
		signals: scalar.New[int8](),
		times:   scalar.New[int64](),
		geo:     spatial.New(),
		logger:  o.logger,
		metrics: o.metrics,
	}
}

// Insert appends an observation and registers it in all four indices,
// returning its permanent RecordID. O(log n) dominated by the ordered and
// spatial index updates.
func (c *Cube) Insert(obs model.Observation) model.RecordID {
	start := time.Now()

	id := c.store.Append(obs)
	c.sources.Add(obs.Source, id)
	c.signals.Add(obs.Signal, id)
	c.times.Add(obs.Timestamp, id)
	c.geo.InsertPoint(obs.Lat, obs.Lon, id)

	c.metrics.RecordInsert(time.Since(start))
	c.logger.LogInsert(id, obs)

	return id
}

// Get returns the observation for id, or ErrNotFound if id is outside
// [0, Len).
func (c *Cube) Get(id model.RecordID) (model.Observation, error) {
	obs, ok := c.store.Get(id)
	if !ok {
		return model.Observation{}, fmt.Errorf("%w: id %d (valid range [0, %d))", ErrNotFound, id, c.store.Len())
	}
	return obs, nil
}

// Len returns the number of stored observations.
func (c *Cube) Len() int { return c.store.Len() }

// IsEmpty reports whether the cube holds no observations.
func (c *Cube) IsEmpty() bool { return c.store.IsEmpty() }

// QuerySource returns all observations for the exact source identifier, in
// insertion order. An unseen identifier yields an empty result, not an
// error.
func (c *Cube) QuerySource(src model.SourceID) []model.Record {
	return c.finish("source", time.Now(), c.sources.Lookup(src))
}

// AllSources returns every distinct source identifier seen, sorted
// lexicographically.
func (c *Cube) AllSources() []model.SourceID {
	return c.sources.Keys()
}

// QuerySignal returns all observations with the exact signal strength, in
// insertion order.
func (c *Cube) QuerySignal(v int8) []model.Record {
	return c.finish("signal", time.Now(), c.signals.Exact(v))
}

// QuerySignalRange returns all observations with signal strength in
// [min, max], both ends inclusive, ascending by signal with insertion order
// preserved within equal values. min > max yields an empty result.
func (c *Cube) QuerySignalRange(min, max int8) []model.Record {
	return c.finish("signal", time.Now(), c.signals.Range(min, max))
}

// QuerySignalAbove returns observations with signal strictly greater than v.
func (c *Cube) QuerySignalAbove(v int8) []model.Record {
	return c.finish("signal", time.Now(), c.signals.GreaterThan(v))
}

// QuerySignalAtLeast returns observations with signal >= v.
func (c *Cube) QuerySignalAtLeast(v int8) []model.Record {
	return c.finish("signal", time.Now(), c.signals.AtLeast(v))
}

// QuerySignalBelow returns observations with signal strictly less than v.
func (c *Cube) QuerySignalBelow(v int8) []model.Record {
	return c.finish("signal", time.Now(), c.signals.LessThan(v))
}

// QuerySignalAtMost returns observations with signal <= v.
func (c *Cube) QuerySignalAtMost(v int8) []model.Record {
	return c.finish("signal", time.Now(), c.signals.AtMost(v))
}

// QueryTime returns all observations with the exact timestamp, in insertion
// order.
func (c *Cube) QueryTime(t int64) []model.Record {
	return c.finish("time", time.Now(), c.times.Exact(t))
}

// QueryTimeRange returns all observations with timestamp in [start, end],
// both ends inclusive. start > end yields an empty result.
func (c *Cube) QueryTimeRange(start, end int64) []model.Record {
	return c.finish("time", time.Now(), c.times.Range(start, end))
}

// QueryTimeAfter returns observations strictly after t.
func (c *Cube) QueryTimeAfter(t int64) []model.Record {
	return c.finish("time", time.Now(), c.times.GreaterThan(t))
}

// QueryTimeAtLeast returns observations at or after t.
func (c *Cube) QueryTimeAtLeast(t int64) []model.Record {
	return c.finish("time", time.Now(), c.times.AtLeast(t))
}

// QueryTimeBefore returns observations strictly before t.
func (c *Cube) QueryTimeBefore(t int64) []model.Record {
	return c.finish("time", time.Now(), c.times.LessThan(t))
}

// QueryTimeAtMost returns observations at or before t.
func (c *Cube) QueryTimeAtMost(t int64) []model.Record {
	return c.finish("time", time.Now(), c.times.AtMost(t))
}

// records materializes full records for the given ids, preserving order.
// Ids always originate from the indices, so the store lookups cannot miss.
func (c *Cube) records(ids []model.RecordID) []model.Record {
	if len(ids) == 0 {
		return nil
	}
	out := make([]model.Record, 0, len(ids))
	for _, id := range ids {
		obs, ok := c.store.Get(id)
		if !ok {
			continue
		}
		out = append(out, model.Record{ID: id, Observation: obs})
	}
	return out
}

// finish materializes ids and records query telemetry.
func (c *Cube) finish(dimension string, start time.Time, ids []model.RecordID) []model.Record {
	recs := c.records(ids)
	c.metrics.RecordQuery(dimension, len(recs), time.Since(start))
	c.logger.LogQuery(dimension, len(recs))
	return recs
}
