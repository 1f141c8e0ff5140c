package presets

import (
	"github.com/mirkobrombin/go-binder/v1/binder"
	"github.com/mirkobrombin/go-binder/v1/metrics"
)

// NewObserved creates a named cell reporting to the given metrics collector
// and to the global OpenTelemetry tracer provider.
func NewObserved[T any](value T, name string, m *metrics.Collector) *binder.Cell[T] {
	return binder.New(value,
		binder.WithName(name),
		binder.WithMetrics(m),
		binder.WithTracing(),
	)
}

// NewHotPath creates a named cell for tight bind/release loops. Only metrics
// are kept; tracing and the leak check are disabled since both add an
// allocation per bind.
func NewHotPath[T any](value T, name string, m *metrics.Collector) *binder.Cell[T] {
	opts := []binder.Option{binder.WithName(name), binder.WithLeakCheck(false)}
	if m != nil {
		opts = append(opts, binder.WithMetrics(m))
	}
	return binder.New(value, opts...)
}

// NewPlain creates a cell without instrumentation, apart from the leak check.
func NewPlain[T any](value T) *binder.Cell[T] {
	return binder.New(value)
}
