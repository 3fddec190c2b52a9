package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters for the reporting service.
type Metrics struct {
	ReportsSubmitted prometheus.Counter
	ReportViews      *prometheus.CounterVec // labels: view={list,leaderboard,detail}

	// Geocoding metrics.
	GeocodeRequests *prometheus.CounterVec // labels: outcome={success,error,empty}
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.ReportsSubmitted,
		m.ReportViews,
		m.GeocodeRequests,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		ReportsSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pothuhole",
			Name:      "reports_submitted_total",
			Help:      "Total pothole reports accepted for storage.",
		}),
		ReportViews: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pothuhole",
			Name:      "report_views_total",
			Help:      "Aggregate view requests by view type.",
		}, []string{"view"}),
		GeocodeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pothuhole",
			Name:      "geocode_requests_total",
			Help:      "Reverse-geocoding lookups by outcome.",
		}, []string{"outcome"}),
	}
}
