package instancegroup

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/imamik/csgroup/internal/metrics"
)

const (
	resultUnchanged = "unchanged"
	resultChanged   = "changed"
	resultFailed    = "failed"
)

var (
	reconcileTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metrics.Namespace,
			Name:      "reconcile_total",
			Help:      "Total number of instance group reconciliations by desired state and result",
		},
		[]string{"state", "result"},
	)

	reconcileDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metrics.Namespace,
			Name:      "reconcile_duration_seconds",
			Help:      "Duration of instance group reconciliation in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 10), // 10ms to ~10s
		},
		[]string{"state"},
	)
)

func init() {
	metrics.Registry.MustRegister(reconcileTotal, reconcileDuration)
}

func recordReconcile(state State, changed bool, err error, d time.Duration) {
	result := resultUnchanged
	switch {
	case err != nil:
		result = resultFailed
	case changed:
		result = resultChanged
	}
	reconcileTotal.WithLabelValues(string(state), result).Inc()
	reconcileDuration.WithLabelValues(string(state)).Observe(d.Seconds())
}
