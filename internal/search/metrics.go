package search

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	queryByHeight = "by_height"
	queryBySender = "by_sender"
)

var (
	SearchRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orderscope_search_requests_total",
			Help: "Total number of transaction search requests by query kind",
		},
		[]string{"query"},
	)

	SearchErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orderscope_search_errors_total",
			Help: "Total number of failed transaction search requests by query kind and error type",
		},
		[]string{"query", "error_type"},
	)

	SearchRetries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orderscope_search_retries_total",
			Help: "Total number of retried transaction search requests by query kind",
		},
		[]string{"query"},
	)

	SearchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "orderscope_search_request_duration_seconds",
			Help:    "Duration of transaction search requests including retries",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"query"},
	)
)

func searchRequestInc(query string) {
	SearchRequests.WithLabelValues(query).Inc()
}

func searchRequestDuration(query string, duration time.Duration) {
	SearchDuration.WithLabelValues(query).Observe(duration.Seconds())
}

func searchErrorInc(query, errorType string) {
	SearchErrors.WithLabelValues(query, errorType).Inc()
}

func searchRetryInc(query string) {
	SearchRetries.WithLabelValues(query).Inc()
}
