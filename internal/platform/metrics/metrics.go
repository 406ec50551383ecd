// Package metrics exposes Prometheus collectors for the HTTP pipeline and
// for audited mutations.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Mutation outcomes reported by ObserveMutation.
const (
	OutcomeCommitted = "committed"
	OutcomeNotFound  = "not_found"
	OutcomeFailed    = "failed"
)

// Metrics holds all Prometheus metrics for the application.
// Each instance owns its registry so tests can build as many as they like.
type Metrics struct {
	registry *prometheus.Registry

	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	MutationsTotal   *prometheus.CounterVec
	MutationDuration *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics, plus the Go runtime and
// process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "precise_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "precise_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by method and route",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"method", "route"}),
		MutationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "precise_audited_mutations_total",
			Help: "Total number of audited mutations by entity, action and outcome",
		}, []string{"entity", "action", "outcome"}),
		MutationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "precise_audited_mutation_duration_seconds",
			Help:    "Duration of audited mutation transactions, begin to commit or rollback",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"entity", "action"}),
	}
}

// ObserveRequest records a finished HTTP request.
// route should be the chi route pattern, never the raw path, to keep cardinality bounded.
func (m *Metrics) ObserveRequest(method, route string, status int, start time.Time) {
	m.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
}

// ObserveMutation records the outcome of an audited mutation.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveMutation(entity, action, outcome string, start time.Time) {
	m.MutationsTotal.WithLabelValues(entity, action, outcome).Inc()
	m.MutationDuration.WithLabelValues(entity, action).Observe(time.Since(start).Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
