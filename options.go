package bucketize

import "log/slog"

type options struct {
	parallelism      int
	logger           *Logger
	metricsCollector MetricsCollector
}

// Option configures bucketizer behavior.
//
// Options exist primarily to avoid exploding the API surface with
// variant constructors.
type Option func(*options)

// WithParallelism sets the number of workers used to evaluate a DP layer.
//
// The cells of one layer are independent of each other, so the row range can
// be split across workers without synchronization; each layer is complete
// before the next starts. Values <= 1 disable parallelism (the default).
//
// Parallelism only pays off for large inputs; the work per fit is
// O(buckets * n²), so benchmark before turning this on for small n.
func WithParallelism(workers int) Option {
	return func(o *options) {
		o.parallelism = workers
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

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		parallelism:      1,
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
