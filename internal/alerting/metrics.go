package alerting

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

var alertsEmitted = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "budget_alerts_emitted_total",
		Help: "How many budget alert notifications were emitted, partitioned by alert level.",
	},
	[]string{"level"},
)

var trackerSweeps = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "threshold_tracker_sweeps_total",
		Help: "How many threshold tracker sweeps were executed.",
	},
)

var metrics = []prometheus.Collector{
	alertsEmitted,
	trackerSweeps,
}

// RegisterMetrics registers the alerting metrics with the default registry.
func RegisterMetrics() error {
	for _, c := range metrics {
		if err := prometheus.Register(c); err != nil {
			return fmt.Errorf("could not register %s with Prometheus", c)
		}
	}

	return nil
}

// UnregisterMetrics unregisters the alerting metrics.
//
// This is needed to cleanly exit.
func UnregisterMetrics() bool {
	for _, c := range metrics {
		if ok := prometheus.Unregister(c); !ok {
			return false
		}
	}

	return true
}
