// Package metrics holds the HTTP-level Prometheus metrics shared by the
// transport layer. Domain counters live next to their services.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds transport-level Prometheus metrics.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	EndpointLatency *prometheus.HistogramVec
	InFlight        prometheus.Gauge
	AuthFailures    prometheus.Counter
}

// New creates and registers the transport metrics.
func New() *Metrics {
	return &Metrics{
		RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "kycnet_http_requests_total",
			Help: "Total number of HTTP requests handled",
		}, []string{"method", "route", "status"}),
		EndpointLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "kycnet_endpoint_latency_seconds",
			Help:    "Latency of endpoints in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
		InFlight: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "kycnet_http_requests_in_flight",
			Help: "Current number of in-flight HTTP requests",
		}),
		AuthFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "kycnet_auth_failures_total",
			Help: "Total number of rejected caller tokens",
		}),
	}
}

// ObserveRequest records a completed request.
func (m *Metrics) ObserveRequest(method, route string, status int, durationSeconds float64) {
	m.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.EndpointLatency.WithLabelValues(route).Observe(durationSeconds)
}

// IncrementAuthFailures counts a rejected caller token.
func (m *Metrics) IncrementAuthFailures() {
	m.AuthFailures.Inc()
}
