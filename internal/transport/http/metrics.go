package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	nethttp "net/http"
)

// Metrics holds the Prometheus collectors for the dataset API.
type Metrics struct {
	registry           *prometheus.Registry
	ConversionsTotal   *prometheus.CounterVec
	ConversionDuration prometheus.Histogram
	RequestsTotal      *prometheus.CounterVec
}

// NewMetrics creates and registers the API collectors on a private
// registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		ConversionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cmicli_conversions_total",
			Help: "Workbook conversions by outcome.",
		}, []string{"status"}),
		ConversionDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "cmicli_conversion_duration_seconds",
			Help:    "Workbook conversion duration.",
			Buckets: prometheus.DefBuckets,
		}),
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cmicli_http_requests_total",
			Help: "HTTP requests by route and status code.",
		}, []string{"route", "code"}),
	}
}

// Handler exposes the collectors in Prometheus text format.
func (m *Metrics) Handler() nethttp.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
