package metrics

// InitializeMetrics pre-populates all expected label combinations so that
// every metric is exported from the first Prometheus scrape.
// Call this once at startup after metric registration.
func InitializeMetrics() {
	categories := []string{"poster", "banner", "fanart", "screenshot", "headshot", "clearlogo"}

	for _, c := range categories {
		DownloadsTotal.WithLabelValues(c, "success")
		DownloadsTotal.WithLabelValues(c, "transport_error")
		DownloadsTotal.WithLabelValues(c, "error")
		DownloadDuration.WithLabelValues(c)

		ResizesTotal.WithLabelValues(c, "success")
		ResizesTotal.WithLabelValues(c, "error")
		ResizesTotal.WithLabelValues(c, "skipped_no_source")
		ResizeDuration.WithLabelValues(c)
	}

	for _, op := range []string{"stat", "delete", "mkdir", "rename"} {
		FilesystemOperationDuration.WithLabelValues(op)
		FilesystemOperationErrors.WithLabelValues(op)
	}

	PurgesTotal.WithLabelValues("success")
	PurgesTotal.WithLabelValues("error")
}
