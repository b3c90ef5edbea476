package classmap

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting class map metrics.
// Implement this interface to integrate with monitoring systems; see the
// metrics/prometheus package for a Prometheus adapter.
//
// Lookups are never recorded: they are allocation- and write-free.
type MetricsCollector interface {
	// RecordBuild is called after each construction attempt.
	// count is the number of input pairs, capacity the planned slot count.
	RecordBuild(count int, capacity uint32, duration time.Duration, err error)

	// RecordClose is called when a map releases its storage.
	RecordClose(byteSize int64)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBuild(int, uint32, time.Duration, error) {}
func (NoopMetricsCollector) RecordClose(int64)                             {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	BuildCount      atomic.Int64
	BuildErrors     atomic.Int64
	BuildTotalNanos atomic.Int64
	MembersBuilt    atomic.Int64
	SlotsAllocated  atomic.Int64
	CloseCount      atomic.Int64
	BytesReleased   atomic.Int64
}

// RecordBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBuild(count int, capacity uint32, duration time.Duration, err error) {
	b.BuildCount.Add(1)
	b.BuildTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.BuildErrors.Add(1)
		return
	}
	b.MembersBuilt.Add(int64(count))
	b.SlotsAllocated.Add(int64(capacity))
}

// RecordClose implements MetricsCollector.
func (b *BasicMetricsCollector) RecordClose(byteSize int64) {
	b.CloseCount.Add(1)
	b.BytesReleased.Add(byteSize)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	s := BasicMetricsStats{
		BuildCount:     b.BuildCount.Load(),
		BuildErrors:    b.BuildErrors.Load(),
		MembersBuilt:   b.MembersBuilt.Load(),
		SlotsAllocated: b.SlotsAllocated.Load(),
		CloseCount:     b.CloseCount.Load(),
		BytesReleased:  b.BytesReleased.Load(),
	}
	if s.BuildCount > 0 {
		s.BuildAvgNanos = b.BuildTotalNanos.Load() / s.BuildCount
	}
	return s
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	BuildCount     int64
	BuildErrors    int64
	BuildAvgNanos  int64
	MembersBuilt   int64
	SlotsAllocated int64
	CloseCount     int64
	BytesReleased  int64
}
