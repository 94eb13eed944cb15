package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search Prometheus metrics.
var (
	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "leit",
			Name:      "searches_total",
			Help:      "Total number of search dispatches",
		},
		[]string{"outcome"}, // "ok" / "no_results" / "too_short"
	)

	SearchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "leit",
			Name:      "search_duration_seconds",
			Help:      "Search execution duration in seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
	)

	ResultCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "leit",
			Name:      "result_cache_total",
			Help:      "Result cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)

	IndexDocuments = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "leit",
			Name:      "index_documents",
			Help:      "Number of documents in the loaded search index",
		},
	)

	SessionRestoresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "leit",
			Name:      "session_restores_total",
			Help:      "Session restore attempts by outcome",
		},
		[]string{"outcome"}, // "ok" / "expired" / "mismatch" / "missing"
	)
)

// RegisterSearchMetrics registers search metrics explicitly (no init()).
func RegisterSearchMetrics() {
	prometheus.MustRegister(
		SearchesTotal,
		SearchDuration,
		ResultCacheTotal,
		IndexDocuments,
		SessionRestoresTotal,
	)
}
