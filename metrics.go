package bucketize

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordFit is called after each fit operation.
	// rows is the input length, buckets the requested bucket count,
	// duration the total time taken, err is nil if successful.
	RecordFit(rows, buckets int, duration time.Duration, err error)

	// RecordTransform is called after each label-assignment pass.
	RecordTransform(rows int, duration time.Duration)

	// RecordSave is called after each model save.
	RecordSave(duration time.Duration, err error)

	// RecordLoad is called after each model load.
	RecordLoad(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordFit(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordTransform(int, time.Duration)       {}
func (NoopMetricsCollector) RecordSave(time.Duration, error)          {}
func (NoopMetricsCollector) RecordLoad(time.Duration, error)          {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	FitCount            atomic.Int64
	FitErrors           atomic.Int64
	FitTotalNanos       atomic.Int64
	TransformCount      atomic.Int64
	TransformRows       atomic.Int64
	TransformTotalNanos atomic.Int64
	SaveCount           atomic.Int64
	SaveErrors          atomic.Int64
	LoadCount           atomic.Int64
	LoadErrors          atomic.Int64
}

// RecordFit implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFit(rows, buckets int, duration time.Duration, err error) {
	b.FitCount.Add(1)
	b.FitTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.FitErrors.Add(1)
	}
}

// RecordTransform implements MetricsCollector.
func (b *BasicMetricsCollector) RecordTransform(rows int, duration time.Duration) {
	b.TransformCount.Add(1)
	b.TransformRows.Add(int64(rows))
	b.TransformTotalNanos.Add(duration.Nanoseconds())
}

// RecordSave implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSave(duration time.Duration, err error) {
	b.SaveCount.Add(1)
	if err != nil {
		b.SaveErrors.Add(1)
	}
}

// RecordLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoad(duration time.Duration, err error) {
	b.LoadCount.Add(1)
	if err != nil {
		b.LoadErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		FitCount:       b.FitCount.Load(),
		FitErrors:      b.FitErrors.Load(),
		FitAvgNanos:    b.getAvgFitNanos(),
		TransformCount: b.TransformCount.Load(),
		TransformRows:  b.TransformRows.Load(),
		SaveCount:      b.SaveCount.Load(),
		SaveErrors:     b.SaveErrors.Load(),
		LoadCount:      b.LoadCount.Load(),
		LoadErrors:     b.LoadErrors.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgFitNanos() int64 {
	count := b.FitCount.Load()
	if count == 0 {
		return 0
	}
	return b.FitTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	FitCount       int64
	FitErrors      int64
	FitAvgNanos    int64
	TransformCount int64
	TransformRows  int64
	SaveCount      int64
	SaveErrors     int64
	LoadCount      int64
	LoadErrors     int64
}
