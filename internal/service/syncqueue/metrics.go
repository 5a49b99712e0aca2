package syncqueue

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SyncQueueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sync_queue_depth",
			Help: "Number of mutations waiting to be replayed against the remote",
		},
	)

	SyncOutcomesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sync_outcomes_total",
			Help: "Outcomes of replayed and directly sent mutations",
		},
		[]string{"operation", "outcome"},
	)

	SyncDrainDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sync_drain_duration_seconds",
			Help:    "Duration of a full queue drain",
			Buckets: []float64{.005, .01, .05, .1, .5, 1, 5, 15, 30, 60},
		},
	)
)
