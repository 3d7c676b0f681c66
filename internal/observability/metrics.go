// Package observability holds the Prometheus instrumentation for the
// HTTP surface.
package observability

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace = "membank"
	httpSubsystem    = "http"
)

// Metrics carries the request instruments. All operations are safe for
// concurrent use via Prometheus's internal locking.
type Metrics struct {
	// RequestsTotal counts requests by route pattern and status code.
	RequestsTotal *prometheus.CounterVec

	// RequestDuration measures request latency by route pattern.
	RequestDuration *prometheus.HistogramVec
}

// NewMetrics registers the instruments on reg and returns them. Call
// once per registry; duplicate registration panics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: httpSubsystem,
				Name:      "requests_total",
				Help:      "Total HTTP requests by route and status code",
			},
			[]string{"route", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: httpSubsystem,
				Name:      "request_duration_seconds",
				Help:      "HTTP request duration in seconds by route",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
			},
			[]string{"route"},
		),
	}
}

// Record captures one completed request.
func (m *Metrics) Record(route string, status int, seconds float64) {
	m.RequestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(route).Observe(seconds)
}
