package binder

import (
	"log/slog"

	"github.com/mirkobrombin/go-binder/v1/metrics"
)

type config struct {
	name      string
	metrics   *metrics.Collector
	trace     bool
	leakCheck bool
	logger    *slog.Logger
}

func defaultConfig() config {
	return config{leakCheck: true}
}

// label returns the cell name used for metrics and traces.
func (c *config) label() string {
	if c.name == "" {
		return "anonymous"
	}
	return c.name
}

func (c *config) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return slog.Default()
}

// Option configures a Cell.
type Option func(*config)

// WithName sets the name reported in diagnostics, metrics and traces.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithMetrics enables Prometheus metrics using the provided collector. The
// same collector can be shared by many cells.
func WithMetrics(m *metrics.Collector) Option {
	return func(c *config) {
		c.metrics = m
	}
}

// WithTracing enables OpenTelemetry tracing. Every handle is covered by a span
// that starts at bind and ends at release.
func WithTracing() Option {
	return func(c *config) {
		c.trace = true
	}
}

// WithLeakCheck toggles the warning logged when a handle is garbage collected
// without having been released. It is enabled by default.
func WithLeakCheck(enabled bool) Option {
	return func(c *config) {
		c.leakCheck = enabled
	}
}

// WithLogger sets the logger used for leak warnings. slog.Default is used
// when no logger is configured.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}
