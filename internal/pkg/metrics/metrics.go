package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Pesokrava/tournament_registry/internal/domain"
)

// Metrics holds the Prometheus collectors of the registry services
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	DomainErrors        *prometheus.CounterVec
	CacheRefreshes      *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
// The namespace prefixes all metric names (e.g. "tournament_domain_errors_total").
func New(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by method, route and status",
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
		DomainErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "domain_errors_total",
			Help:      "Domain errors reaching a boundary, by concept and scenario",
		}, []string{"concept", "scenario"}),
		CacheRefreshes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_refreshes_total",
			Help:      "Cache refresh outcomes by concept (refreshed, evicted, failed)",
		}, []string{"concept", "outcome"}),
	}
}

// ObserveError counts err when it is a domain error. Nil metrics are a no-op.
func (m *Metrics) ObserveError(err error) {
	if m == nil {
		return
	}
	de, ok := domain.AsError(err)
	if !ok {
		return
	}

	concept := de.Concept().Key()
	if concept == "" {
		concept = "none"
	}
	scenario := string(de.Scenario())
	if scenario == "" {
		scenario = "none"
	}
	m.DomainErrors.WithLabelValues(concept, scenario).Inc()
}

// ObserveRefresh counts a cache refresh outcome. Nil metrics are a no-op.
func (m *Metrics) ObserveRefresh(concept domain.Concept, outcome string) {
	if m == nil {
		return
	}
	m.CacheRefreshes.WithLabelValues(concept.Key(), outcome).Inc()
}
