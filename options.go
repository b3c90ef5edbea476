package classmap

import (
	"github.com/hupe1980/classmap/intern"
	"github.com/hupe1980/classmap/resource"
)

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	controller       *resource.Controller
	names            *intern.Table
}

// Option configures map construction.
type Option func(*options)

func defaultOptions() options {
	return options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		names:            intern.Default,
	}
}

// WithLogger configures structured logging for builds and teardown.
// Pass nil to disable logging.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &classmap.BasicMetricsCollector{}
//	m, _ := classmap.New(pairs, classmap.WithMetricsCollector(metrics))
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithResourceController makes the map reserve its footprint from rc before
// allocating, and release it on Close.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.controller = rc
	}
}

// WithInternTable sets the table used to intern plain string keys.
// Defaults to intern.Default.
func WithInternTable(t *intern.Table) Option {
	return func(o *options) {
		if t == nil {
			t = intern.Default
		}
		o.names = t
	}
}
