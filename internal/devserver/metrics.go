package devserver

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics collects dev server counters on a private registry so
// multiple servers can coexist in one process.
type Metrics struct {
	registry *prometheus.Registry

	Renders        *prometheus.CounterVec
	Rerenders      prometheus.Counter
	StreamSessions prometheus.Gauge
	StreamMessages *prometheus.CounterVec
}

// NewMetrics creates a metrics collector.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		Renders: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "jay_renders_total",
				Help: "Full-page renders by route",
			},
			[]string{"route"},
		),
		Rerenders: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "jay_rerenders_total",
				Help: "Partial re-renders by id",
			},
		),
		StreamSessions: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "jay_stream_sessions",
				Help: "Active stream sessions",
			},
		),
		StreamMessages: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "jay_stream_messages_total",
				Help: "Stream messages by type",
			},
			[]string{"type"},
		),
	}
}

// Handler serves the registry in Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
