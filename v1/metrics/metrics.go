package metrics

import "github.com/prometheus/client_golang/prometheus"

// Collector groups the Prometheus metrics reported by binder cells. A single
// Collector may be shared by any number of cells; series are labelled by cell
// name and value type.
type Collector struct {
	// Binds counts successful binds.
	Binds *prometheus.CounterVec
	// Contention counts bind attempts that found the cell already bound. The
	// mode label is "panic" for Bind and "result" for TryBind.
	Contention *prometheus.CounterVec
	// Releases counts handle releases.
	Releases *prometheus.CounterVec
	// Bound is the number of live handles. Cells sharing a name and type share
	// a series, so the value can exceed 1.
	Bound *prometheus.GaugeVec
	// Hold observes how long handles were held.
	Hold *prometheus.HistogramVec
}

// Contention modes.
const (
	ModePanic  = "panic"
	ModeResult = "result"
)

var labels = []string{"cell", "type"}

// NewRegistry creates a new Prometheus registry.
func NewRegistry() *prometheus.Registry {
	return prometheus.NewRegistry()
}

// NewCollector creates the binder metrics and registers them on reg when reg
// is not nil.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		Binds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "binder_binds_total",
			Help: "Total number of successful binds",
		}, labels),
		Contention: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "binder_contention_total",
			Help: "Total number of binds rejected because the cell was already bound",
		}, append(labels, "mode")),
		Releases: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "binder_releases_total",
			Help: "Total number of handle releases",
		}, labels),
		Bound: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "binder_bound",
			Help: "Number of live handles",
		}, labels),
		Hold: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "binder_hold_seconds",
			Help:    "Time a handle was held before release",
			Buckets: prometheus.ExponentialBuckets(1e-6, 10, 8),
		}, labels),
	}
	if reg != nil {
		reg.MustRegister(c.Binds, c.Contention, c.Releases, c.Bound, c.Hold)
	}
	return c
}

// ObserveBind records a successful bind.
func (c *Collector) ObserveBind(cell, typ string) {
	c.Binds.WithLabelValues(cell, typ).Inc()
	c.Bound.WithLabelValues(cell, typ).Inc()
}

// ObserveContention records a rejected bind.
func (c *Collector) ObserveContention(cell, typ, mode string) {
	c.Contention.WithLabelValues(cell, typ, mode).Inc()
}

// ObserveRelease records a release after a handle was held for seconds.
func (c *Collector) ObserveRelease(cell, typ string, seconds float64) {
	c.Releases.WithLabelValues(cell, typ).Inc()
	c.Bound.WithLabelValues(cell, typ).Dec()
	c.Hold.WithLabelValues(cell, typ).Observe(seconds)
}
