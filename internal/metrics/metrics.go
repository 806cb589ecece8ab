package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result store metrics. The db label names the database ("results").
var (
	storeQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orderscope_db_queries_total",
			Help: "Queries issued against a result database, by operation",
		},
		[]string{"db", "operation"},
	)

	storeQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "orderscope_db_query_duration_seconds",
			Help:    "Latency of result database queries",
			Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5},
		},
		[]string{"db", "operation"},
	)

	storeErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orderscope_db_errors_total",
			Help: "Failed result database queries, by failing step",
		},
		[]string{"db", "error_type"},
	)
)

// Analysis metrics, labelled per liquidator and relation.
var (
	runDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "orderscope_analysis_duration_seconds",
			Help:    "Time taken to analyze one liquidator",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600, 1800},
		},
		[]string{"liquidator", "relation"},
	)

	liquidationsAnalyzed = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "orderscope_liquidations_analyzed",
			Help: "Liquidations checked in the last run",
		},
		[]string{"liquidator", "relation"},
	)

	liquidationsFlagged = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "orderscope_liquidations_flagged",
			Help: "Liquidations flagged as adjacent to an oracle update in the last run",
		},
		[]string{"liquidator", "relation"},
	)

	componentErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orderscope_errors_total",
			Help: "Errors reported by a component",
		},
		[]string{"component", "severity"},
	)

	componentHealth = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "orderscope_component_health",
			Help: "1 while the component's last operation succeeded, 0 after a failure",
		},
		[]string{"component"},
	)
)

// Process metrics, refreshed by the metrics server.
var (
	uptime = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "orderscope_uptime_seconds",
		Help: "Seconds since the process started",
	})

	goroutines = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "orderscope_goroutines",
		Help: "Goroutines currently running",
	})

	heapBytes = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "orderscope_memory_usage_bytes",
		Help: "Go runtime memory, by kind",
	}, []string{"type"})

	processStart = time.Now()
)

func DBQueryInc(db string, operation string) {
	storeQueries.WithLabelValues(db, operation).Inc()
}

func DBQueryDuration(db string, operation string, duration time.Duration) {
	storeQueryDuration.WithLabelValues(db, operation).Observe(duration.Seconds())
}

func DBErrorsInc(db string, errorType string) {
	storeErrors.WithLabelValues(db, errorType).Inc()
}

func RunDurationLog(liquidator, relation string, duration time.Duration) {
	runDuration.WithLabelValues(liquidator, relation).Observe(duration.Seconds())
}

// LiquidationsSet records the outcome of the last run for one liquidator.
func LiquidationsSet(liquidator, relation string, total, flagged int) {
	liquidationsAnalyzed.WithLabelValues(liquidator, relation).Set(float64(total))
	liquidationsFlagged.WithLabelValues(liquidator, relation).Set(float64(flagged))
}

func ErrorsInc(component, severity string) {
	componentErrors.WithLabelValues(component, severity).Inc()
}

func ComponentHealthSet(component string, healthy bool) {
	var v float64
	if healthy {
		v = 1
	}
	componentHealth.WithLabelValues(component).Set(v)
}

// UpdateSystemMetrics refreshes the process metrics.
func UpdateSystemMetrics() {
	uptime.Set(time.Since(processStart).Seconds())
	goroutines.Set(float64(runtime.NumGoroutine()))

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	for kind, v := range map[string]uint64{
		"alloc":       m.Alloc,
		"total_alloc": m.TotalAlloc,
		"sys":         m.Sys,
		"heap_inuse":  m.HeapInuse,
	} {
		heapBytes.WithLabelValues(kind).Set(float64(v))
	}
}
