package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "gateway"

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Metrics holds the gateway collectors. Each instance owns its registry so
// tests can build as many as they like.
type Metrics struct {
	registry        *prometheus.Registry
	backendRequests *prometheus.CounterVec
	backendDuration *prometheus.HistogramVec
	fieldFailures   *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		backendRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "backend_requests_total",
			Help:      "Backend REST calls by endpoint and outcome",
		}, []string{"endpoint", "outcome"}),
		backendDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "backend_request_duration_seconds",
			Help:      "Backend REST call latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),
		fieldFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "graphql_field_failures_total",
			Help:      "GraphQL fields resolved to null or error because the backend call failed",
		}, []string{"field"}),
	}

	m.registry.MustRegister(
		m.backendRequests,
		m.backendDuration,
		m.fieldFailures,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) ObserveBackendCall(endpoint string, err error, elapsed time.Duration) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	m.backendRequests.WithLabelValues(endpoint, outcome).Inc()
	m.backendDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

func (m *Metrics) FieldFailed(field string) {
	m.fieldFailures.WithLabelValues(field).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
