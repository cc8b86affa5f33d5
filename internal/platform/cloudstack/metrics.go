package cloudstack

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/imamik/csgroup/internal/metrics"
)

var (
	apiRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Total number of CloudStack API requests by command and outcome",
		},
		[]string{"command", "outcome"}, // outcome: success, api_error, transport_error
	)

	apiRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "Duration of CloudStack API requests in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 8), // 50ms to ~6.4s
		},
		[]string{"command"},
	)
)

func init() {
	metrics.Registry.MustRegister(apiRequestsTotal, apiRequestDuration)
}

// observeRequest records one API round trip.
func observeRequest(command string, err error, d time.Duration) {
	outcome := "success"
	switch {
	case IsAPIError(err):
		outcome = "api_error"
	case err != nil:
		outcome = "transport_error"
	}
	apiRequestsTotal.WithLabelValues(command, outcome).Inc()
	apiRequestDuration.WithLabelValues(command).Observe(d.Seconds())
}
