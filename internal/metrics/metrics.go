// Package metrics has prometheus metric variables/functions.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricSyncPass = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "drivesync_sync_pass_duration_seconds",
			Help:    "Duration of synchronization passes.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{
			"kind",   // files, folders
			"result", // ok, deferred, error
		},
	)
	metricActions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "drivesync_actions_total",
			Help: "Actions emitted by synchronization passes.",
		},
		[]string{
			"kind",      // files, folders
			"direction", // client, server
			"type",      // acknowledge, edit, download, upload, remove, sync, error
		},
	)
	metricWarnings = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "drivesync_warnings_total",
			Help: "Warnings about unsynchronizable versions, by logged level.",
		},
		[]string{
			"level", // warn, debug
		},
	)
	metricHTTPRequest = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "drivesync_http_request_duration_seconds",
			Help:    "HTTP API requests.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.100, 0.5, 1, 5},
		},
		[]string{
			"method",
			"code",
		},
	)
	metricNotifications = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "drivesync_folder_notifications_total",
			Help: "Consolidated folder change notifications drained from the event buffer.",
		},
	)
)

// SyncPassObserve records the duration and outcome of a synchronization pass.
func SyncPassObserve(kind, result string, duration time.Duration) {
	metricSyncPass.WithLabelValues(kind, result).Observe(duration.Seconds())
}

// ActionInc counts an emitted action.
func ActionInc(kind, direction, actionType string) {
	metricActions.WithLabelValues(kind, direction, actionType).Inc()
}

// WarningInc counts a warning at the level it was logged.
func WarningInc(level string) {
	metricWarnings.WithLabelValues(level).Inc()
}

// HTTPRequestObserve records an API request.
func HTTPRequestObserve(method, code string, duration time.Duration) {
	metricHTTPRequest.WithLabelValues(method, code).Observe(duration.Seconds())
}

// NotificationsAdd counts drained folder notifications.
func NotificationsAdd(n int) {
	metricNotifications.Add(float64(n))
}
