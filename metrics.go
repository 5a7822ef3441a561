package obscube

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordInsert is called after each insert operation.
	RecordInsert(duration time.Duration)

	// RecordQuery is called after each query operation. dimension names the
	// query family ("source", "signal", "time", "geo", "multi"), results is
	// the number of matching records.
	RecordQuery(dimension string, results int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(time.Duration)             {}
func (NoopMetricsCollector) RecordQuery(string, int, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	InsertCount      atomic.Int64
	InsertTotalNanos atomic.Int64
	QueryCount       atomic.Int64
	QueryResults     atomic.Int64
	QueryTotalNanos  atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(duration time.Duration) {
	b.InsertCount.Add(1)
	b.InsertTotalNanos.Add(duration.Nanoseconds())
}

// RecordQuery implements MetricsCollector.
func (b *BasicMetricsCollector) RecordQuery(_ string, results int, duration time.Duration) {
	b.QueryCount.Add(1)
	b.QueryResults.Add(int64(results))
	b.QueryTotalNanos.Add(duration.Nanoseconds())
}

// MetricsStats is a point-in-time snapshot of collected metrics.
type MetricsStats struct {
	InsertCount    int64
	InsertAvgNanos int64
	QueryCount     int64
	QueryResults   int64
	QueryAvgNanos  int64
}

// GetStats returns a snapshot of the collected metrics.
func (b *BasicMetricsCollector) GetStats() MetricsStats {
	stats := MetricsStats{
		InsertCount:  b.InsertCount.Load(),
		QueryCount:   b.QueryCount.Load(),
		QueryResults: b.QueryResults.Load(),
	}
	if stats.InsertCount > 0 {
		stats.InsertAvgNanos = b.InsertTotalNanos.Load() / stats.InsertCount
	}
	if stats.QueryCount > 0 {
		stats.QueryAvgNanos = b.QueryTotalNanos.Load() / stats.QueryCount
	}
	return stats
}
