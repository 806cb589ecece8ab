package extractor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	liquidationsExtracted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orderscope_liquidations_extracted_total",
			Help: "Number of liquidation messages extracted by liquidator",
		},
		[]string{"liquidator"},
	)

	senderPagesFetched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orderscope_sender_pages_fetched_total",
			Help: "Number of sender-scoped transaction pages fetched by liquidator",
		},
		[]string{"liquidator"},
	)
)
