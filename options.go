package powgo

import (
	"log/slog"
	"time"

	"github.com/hupe1980/powgo/improve"
	"github.com/hupe1980/powgo/power"
)

type options struct {
	tripletCount          int
	levels                int
	workers               int
	maxExponent           int
	progressInterval      time.Duration
	maxConcurrentSearches int64
	moveRule              improve.MoveRule
	metricsCollector      MetricsCollector
	logger                *Logger
}

// Option configures Engine construction.
type Option func(*options)

// WithTripletCount sets the minimum size of the generated triplet pool.
// Generation keeps all matches of its final search radius, so the pool may
// be slightly larger.
func WithTripletCount(count int) Option {
	return func(o *options) {
		o.tripletCount = count
	}
}

// WithLevels sets the partition prefix length for parallel search. The
// number of work units is the number of distinct valid prefixes of this
// length, so higher levels mean more and smaller work units. Zero disables
// partitioning: one work unit covers the whole enumeration.
func WithLevels(levels int) Option {
	return func(o *options) {
		o.levels = levels
	}
}

// WithWorkers sets the number of worker goroutines claiming work units.
// If 0, defaults to the hardware parallelism minus one for the monitor.
func WithWorkers(workers int) Option {
	return func(o *options) {
		o.workers = workers
	}
}

// WithMaxExponent sets the largest exponent of the power-of-two table the
// generator and move rules scan. Membership tests never consult the table,
// so this bounds search breadth, not correctness.
func WithMaxExponent(maxExp int) Option {
	return func(o *options) {
		o.maxExponent = maxExp
	}
}

// WithProgressInterval sets the monitor polling interval and the minimum
// spacing between progress log lines.
func WithProgressInterval(interval time.Duration) Option {
	return func(o *options) {
		o.progressInterval = interval
	}
}

// WithMoveRule selects the improver move rule. Defaults to
// improve.SingleSwapRule; improve.ExhaustiveRule explores a wider
// neighborhood per move at higher cost.
func WithMoveRule(rule improve.MoveRule) Option {
	return func(o *options) {
		o.moveRule = rule
	}
}

// WithExhaustiveMoveRule selects the wider improve.ExhaustiveRule move rule.
// Convenience wrapper for WithMoveRule(improve.ExhaustiveRule).
func WithExhaustiveMoveRule() Option {
	return func(o *options) {
		o.moveRule = improve.ExhaustiveRule
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		tripletCount:          35,
		levels:                1,
		workers:               0,
		maxExponent:           power.DefaultExponent,
		progressInterval:      100 * time.Millisecond,
		maxConcurrentSearches: 1,
		metricsCollector:      NoopMetricsCollector{},
		logger:                NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
