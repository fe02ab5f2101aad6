package powgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems.
type MetricsCollector interface {
	// RecordGenerate is called after triplet generation.
	// count is the number of triplets produced, duration the time taken.
	RecordGenerate(count int, duration time.Duration)

	// RecordSearch is called after each search-mode run.
	// combinations is the total number of subsets tried across all work
	// units, err is nil if successful.
	RecordSearch(setSize int, combinations int64, duration time.Duration, err error)

	// RecordSimple is called after each simplified-mode run.
	RecordSimple(setSize int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordGenerate(int, time.Duration)               {}
func (NoopMetricsCollector) RecordSearch(int, int64, time.Duration, error)   {}
func (NoopMetricsCollector) RecordSimple(int, time.Duration, error)          {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	GenerateCount     atomic.Int64
	GenerateTriplets  atomic.Int64
	GenerateTotalNano atomic.Int64
	SearchCount       atomic.Int64
	SearchErrors      atomic.Int64
	SearchCombos      atomic.Int64
	SearchTotalNanos  atomic.Int64
	SimpleCount       atomic.Int64
	SimpleErrors      atomic.Int64
}

// RecordGenerate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGenerate(count int, duration time.Duration) {
	b.GenerateCount.Add(1)
	b.GenerateTriplets.Add(int64(count))
	b.GenerateTotalNano.Add(duration.Nanoseconds())
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(setSize int, combinations int64, duration time.Duration, err error) {
	b.SearchCount.Add(1)
	b.SearchCombos.Add(combinations)
	b.SearchTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SearchErrors.Add(1)
	}
}

// RecordSimple implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSimple(setSize int, duration time.Duration, err error) {
	b.SimpleCount.Add(1)
	if err != nil {
		b.SimpleErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		GenerateCount:    b.GenerateCount.Load(),
		GenerateTriplets: b.GenerateTriplets.Load(),
		SearchCount:      b.SearchCount.Load(),
		SearchErrors:     b.SearchErrors.Load(),
		SearchCombos:     b.SearchCombos.Load(),
		SearchAvgNanos:   b.getAvgSearchNanos(),
		SimpleCount:      b.SimpleCount.Load(),
		SimpleErrors:     b.SimpleErrors.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgSearchNanos() int64 {
	count := b.SearchCount.Load()
	if count == 0 {
		return 0
	}
	return b.SearchTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	GenerateCount    int64
	GenerateTriplets int64
	SearchCount      int64
	SearchErrors     int64
	SearchCombos     int64
	SearchAvgNanos   int64
	SimpleCount      int64
	SimpleErrors     int64
}
