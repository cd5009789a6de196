package store

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for monitoring store behavior and performance.
// All metrics with labels support multi-tenancy via "subsystem" and "store" labels.

var (
	// storesCreated counts the total number of stores created (global counter).
	storesCreated = promauto.NewCounter(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "store_created",
		Help: "The total number of stores created",
	})

	// dispatchTotal counts the total number of intents dispatched.
	dispatchTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "store_dispatch_total",
		Help: "The total number of intents dispatched",
	}, []string{"subsystem", "store"})

	// dispatchDuration measures the time spent reducing and publishing a tree.
	dispatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint:gochecknoglobals
		Name: "store_dispatch_duration_seconds",
		Help: "The time spent applying an intent and publishing the tree",
		Buckets: []float64{
			0.00001, // 10us
			0.0001,  // 100us
			0.001,   // 1ms
			0.01,    // 10ms
			0.1,     // 100ms
			1,       // 1s
		},
	}, []string{"subsystem", "store"})

	// notifyDuration measures the time spent notifying listeners after a dispatch.
	notifyDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint:gochecknoglobals
		Name: "store_notify_duration_seconds",
		Help: "The time spent notifying subscribed listeners",
		Buckets: []float64{
			0.00001, // 10us
			0.0001,  // 100us
			0.001,   // 1ms
			0.01,    // 10ms
			0.1,     // 100ms
			1,       // 1s
		},
	}, []string{"subsystem", "store"})

	// listenerPanics counts the number of times a listener recovered from a panic.
	listenerPanics = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "store_listener_panics",
		Help: "The total number of listeners that recovered from a panic",
	}, []string{"subsystem", "store"})

	// activeListeners tracks the number of currently subscribed listeners.
	activeListeners = promauto.NewGaugeVec(prometheus.GaugeOpts{ //nolint:gochecknoglobals
		Name: "store_active_listeners",
		Help: "The total number of subscribed listeners",
	}, []string{"subsystem", "store"})

	// activeWatchers tracks the number of currently open watch channels.
	activeWatchers = promauto.NewGaugeVec(prometheus.GaugeOpts{ //nolint:gochecknoglobals
		Name: "store_active_watchers",
		Help: "The total number of open watch channels",
	}, []string{"subsystem", "store"})
)
