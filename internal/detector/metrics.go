package detector

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeFlagged    = "flagged"
	outcomeNotFlagged = "not_flagged"
	outcomeNotFound   = "not_found"
)

var (
	detectionOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orderscope_detector_outcomes_total",
			Help: "Outcome of ordering checks by relation",
		},
		[]string{"relation", "outcome"},
	)

	neighborLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orderscope_detector_neighbor_lookups_total",
			Help: "Number of ordering checks that continued into a neighboring block",
		},
		[]string{"relation"},
	)
)

func outcomeInc(relation, outcome string) {
	detectionOutcomes.WithLabelValues(relation, outcome).Inc()
}
