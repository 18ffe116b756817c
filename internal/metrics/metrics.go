package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AdServerRequestDuration tracks the latency of ad server API calls
	AdServerRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "adserver_request_duration_seconds",
			Help: "Duration of ad server API requests in seconds",
			Buckets: []float64{
				0.05, // 50ms
				0.1,  // 100ms
				0.25, // 250ms
				0.5,  // 500ms
				1.0,  // 1s
				2.5,  // 2.5s
				5.0,  // 5s
				10.0, // 10s
				30.0, // 30s
			},
		},
		[]string{"service", "method", "status"},
	)

	// LineItemSyncTotal counts synchronization operations by outcome
	LineItemSyncTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lineitem_sync_total",
			Help: "Number of line item synchronization operations",
		},
		[]string{"action", "outcome"}, // outcome: success or failure
	)
)

// RecordAdServerRequest records the duration of an ad server API call
func RecordAdServerRequest(service, method, status string, duration float64) {
	AdServerRequestDuration.WithLabelValues(service, method, status).Observe(duration)
}

// RecordSync counts one synchronization operation
func RecordSync(action string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	LineItemSyncTotal.WithLabelValues(action, outcome).Inc()
}
