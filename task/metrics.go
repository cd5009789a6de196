package task

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeFulfilled = "fulfilled"
	outcomeRejected  = "rejected"
)

//nolint:gochecknoglobals
var (
	runsStarted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "task_runs_started_total",
		Help: "Number of task runs started (pending intents dispatched)",
	}, []string{"subsystem", "task"})

	runsSettled = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "task_runs_settled_total",
		Help: "Number of task runs settled, by outcome",
	}, []string{"subsystem", "task", "outcome"})

	runsInFlight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "task_runs_in_flight",
		Help: "Number of task runs currently executing",
	}, []string{"subsystem", "task"})

	runDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "task_run_duration_seconds",
		Help:    "Time spent executing a task run, by outcome",
		Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10, 30, 60},
	}, []string{"subsystem", "task", "outcome"})
)
