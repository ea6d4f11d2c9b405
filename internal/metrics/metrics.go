package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ecosnap_analyses_total",
			Help: "Trash photo analyses by outcome (ok, rejected, error).",
		},
		[]string{"outcome"},
	)

	RewardsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ecosnap_rewards_total",
			Help: "Confirmed recycling rewards by category.",
		},
		[]string{"category"},
	)

	DuplicateSubmissions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ecosnap_duplicate_submissions_total",
			Help: "Confirmation attempts rejected by the duplicate-upload ledger.",
		},
	)

	TreesWatered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ecosnap_trees_watered_total",
			Help: "Successful watering purchases.",
		},
	)

	TreesPlanted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ecosnap_trees_planted_total",
			Help: "New trees planted.",
		},
	)
)
