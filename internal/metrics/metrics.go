package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cover_cache_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cover_cache_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cover_cache_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)
)

// Download metrics
var (
	DownloadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cover_cache_downloads_total",
			Help: "Total number of cover downloads",
		},
		[]string{"category", "status"},
	)

	DownloadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cover_cache_download_duration_seconds",
			Help:    "Cover download duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"category"},
	)

	DownloadsSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cover_cache_downloads_skipped_total",
			Help: "Total number of downloads skipped because the cached copy was still fresh",
		},
	)
)

// Resize metrics
var (
	ResizesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cover_cache_resizes_total",
			Help: "Total number of cover resize operations",
		},
		[]string{"category", "status"},
	)

	ResizeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cover_cache_resize_duration_seconds",
			Help:    "Cover resize duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"category"},
	)

	ResizeGateInUse = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cover_cache_resize_gate_in_use",
			Help: "Number of resize admission-gate slots currently held",
		},
	)

	ResizeGateCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cover_cache_resize_gate_capacity",
			Help: "Total number of resize admission-gate slots",
		},
	)
)

// Item lifecycle metrics
var (
	ItemsProcessedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cover_cache_items_processed_total",
			Help: "Total number of item-updated events processed",
		},
	)

	PurgesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cover_cache_purges_total",
			Help: "Total number of item cache purges",
		},
		[]string{"status"},
	)
)

// Filesystem metrics
var (
	FilesystemOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cover_cache_filesystem_operation_duration_seconds",
			Help:    "Filesystem operation duration in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"operation"},
	)

	FilesystemOperationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cover_cache_filesystem_operation_errors_total",
			Help: "Total number of filesystem operation errors",
		},
		[]string{"operation"},
	)
)

// Application info metric
var (
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cover_cache_app_info",
			Help: "Application information",
		},
		[]string{"version", "commit", "go_version"},
	)
)

// SetAppInfo sets the application info metric
func SetAppInfo(version, commit, goVersion string) {
	AppInfo.WithLabelValues(version, commit, goVersion).Set(1)
}
