package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search Prometheus metrics.
var (
	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "articledex",
			Name:      "searches_total",
			Help:      "Total number of search requests by resolution mode",
		},
		[]string{"language", "mode"}, // mode: "listing" / "primary" / "fallback"
	)

	SearchResultsReturned = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "articledex",
			Name:      "search_results_returned",
			Help:      "Number of results returned per search request",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 50},
		},
		[]string{"language"},
	)
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers Prometheus search metrics. Must be called once from main.
func RegisterSearchMetrics() {
	if searchMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchesTotal)
	prometheus.MustRegister(SearchResultsReturned)
	searchMetricsRegistered = true
}
