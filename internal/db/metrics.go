package db

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	compactions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orderscope_db_compactions_total",
			Help: "Total number of database compactions by outcome",
		},
		[]string{"status"},
	)

	compactionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "orderscope_db_compaction_duration_seconds",
			Help:    "Duration of database compactions",
			Buckets: prometheus.DefBuckets,
		},
	)
)

func compactionSuccessInc() {
	compactions.WithLabelValues("success").Inc()
}

func compactionErrorInc() {
	compactions.WithLabelValues("error").Inc()
}

func compactionDurationLog(d time.Duration) {
	compactionDuration.Observe(d.Seconds())
}
