package mediacover

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cover-cache/internal/events"
	"cover-cache/internal/filesystem"
	"cover-cache/internal/logging"
	"cover-cache/internal/metrics"
	"cover-cache/internal/resize"
)

// CoverResult records the download outcome for one cover during a cache
// pass. Failures are data here, not control flow: one broken remote link
// must never abort processing of an item's remaining covers.
type CoverResult struct {
	Cover Cover
	// FreshlyDownloaded is true only when the original was fetched this
	// pass; it forces regeneration of every resized variant.
	FreshlyDownloaded bool
	Err               error
}

// Service owns the cover cache pipeline: staleness checks, downloads,
// admission-gated resizing, URL rewriting and event-driven purging.
type Service struct {
	urlBase    string
	paths      *PathResolver
	downloader Downloader
	resizer    resize.Resizer
	checker    ExistsChecker
	bus        *events.Bus

	// gate bounds concurrent resize work process-wide. Downloads are
	// network-bound and deliberately not gated.
	gate chan struct{}
}

// NewService constructs the cover cache service. gateCapacity is the number
// of items allowed to run resize work concurrently; values below 1 are
// raised to 1.
func NewService(urlBase, cacheRoot string, downloader Downloader, resizer resize.Resizer, checker ExistsChecker, bus *events.Bus, gateCapacity int) *Service {
	if gateCapacity < 1 {
		gateCapacity = 1
	}
	metrics.ResizeGateCapacity.Set(float64(gateCapacity))

	return &Service{
		urlBase:    urlBase,
		paths:      NewPathResolver(cacheRoot),
		downloader: downloader,
		resizer:    resizer,
		checker:    checker,
		bus:        bus,
		gate:       make(chan struct{}, gateCapacity),
	}
}

// Paths returns the service's path resolver, the single source of truth
// for cache file layout.
func (s *Service) Paths() *PathResolver {
	return s.paths
}

// GateCapacity returns the size of the resize admission gate.
func (s *Service) GateCapacity() int {
	return cap(s.gate)
}

// RegisterHandlers subscribes the service to item lifecycle events.
func (s *Service) RegisterHandlers() {
	events.Subscribe(s.bus, s.HandleItemUpdated)
	events.Subscribe(s.bus, s.HandleItemDeleted)
}

// HandleItemUpdated refreshes the item's cover cache and always publishes
// CoversUpdated afterward, even when some covers failed, so consumers know
// the local URLs are as fresh as this pass could make them.
func (s *Service) HandleItemUpdated(e ItemUpdated) {
	s.EnsureCovers(context.Background(), e.Item)
	metrics.ItemsProcessedTotal.Inc()
	events.Publish(s.bus, CoversUpdated{Item: e.Item})
}

// HandleItemDeleted purges the item's cache directory. Purge failures are
// deliberately loud: swallowing them would leak directories for deleted
// items forever.
func (s *Service) HandleItemDeleted(e ItemDeleted) {
	dir := s.paths.ItemDir(e.Item.ID)
	if !filesystem.Exists(dir) {
		logging.Debug("No cover cache to purge for item %d", e.Item.ID)
		return
	}
	if err := filesystem.DeleteRecursive(dir); err != nil {
		metrics.PurgesTotal.WithLabelValues("error").Inc()
		logging.Error("Failed to purge cover cache for item %d: %v", e.Item.ID, err)
		return
	}
	metrics.PurgesTotal.WithLabelValues("success").Inc()
	logging.Info("Purged cover cache for item %d", e.Item.ID)
}

// EnsureCovers brings the cache for one item up to date: downloads stale
// originals, then regenerates resized variants under the admission gate.
// The returned results describe the download phase per cover.
func (s *Service) EnsureCovers(ctx context.Context, item Item) []CoverResult {
	results := s.downloadCovers(ctx, item)

	// Resize work is CPU-bound; one gate slot covers the whole item so
	// unbounded concurrent event deliveries cannot starve the host.
	s.gate <- struct{}{}
	metrics.ResizeGateInUse.Inc()
	defer func() {
		metrics.ResizeGateInUse.Dec()
		<-s.gate
	}()

	for _, res := range results {
		s.ensureResizedCovers(item, res.Cover, res.FreshlyDownloaded)
	}
	return results
}

// downloadCovers runs the staleness check and download for every cover of
// the item. Failures are classified and collected, never propagated.
func (s *Service) downloadCovers(ctx context.Context, item Item) []CoverResult {
	results := make([]CoverResult, 0, len(item.Covers))

	for _, cover := range item.Covers {
		localPath := s.paths.CoverPath(item.ID, cover.Category)

		if s.checker.AlreadyExists(cover.RemoteURL, localPath) {
			metrics.DownloadsSkipped.Inc()
			logging.Debug("Cover %s for item %d is up to date", cover.Category, item.ID)
			results = append(results, CoverResult{Cover: cover})
			continue
		}

		err := s.downloadCover(ctx, item, cover, localPath)
		results = append(results, CoverResult{
			Cover:             cover,
			FreshlyDownloaded: err == nil,
			Err:               err,
		})
	}
	return results
}

func (s *Service) downloadCover(ctx context.Context, item Item, cover Cover, localPath string) error {
	logging.Debug("Downloading %s cover for item %d from %s", cover.Category, item.ID, cover.RemoteURL)

	start := time.Now()
	err := s.downloader.DownloadToFile(ctx, cover.RemoteURL, localPath)
	metrics.DownloadDuration.WithLabelValues(cover.Category.String()).Observe(time.Since(start).Seconds())

	if err == nil {
		metrics.DownloadsTotal.WithLabelValues(cover.Category.String(), "success").Inc()
		return nil
	}

	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		metrics.DownloadsTotal.WithLabelValues(cover.Category.String(), "transport_error").Inc()
		logging.Warn("Couldn't download %s cover for item %d (%s): %v",
			cover.Category, item.ID, item.Title, err)
	} else {
		metrics.DownloadsTotal.WithLabelValues(cover.Category.String(), "error").Inc()
		logging.Error("Couldn't download %s cover for item %d (%s): %v",
			cover.Category, item.ID, item.Title, err)
	}
	return err
}

// ensureResizedCovers regenerates the resized variants for one cover.
// forceResize bypasses the missing/empty check after a fresh download so
// stale variants never outlive a replaced original.
func (s *Service) ensureResizedCovers(item Item, cover Cover, forceResize bool) {
	heights := ResizeHeights(cover.Category)
	if len(heights) == 0 {
		return
	}

	sourcePath := s.paths.CoverPath(item.ID, cover.Category)

	for _, height := range heights {
		variantPath := s.paths.ResizedCoverPath(item.ID, cover.Category, height)

		if !forceResize && variantOK(variantPath) {
			continue
		}

		if !filesystem.Exists(sourcePath) {
			// Nothing to resize from this pass; the next successful
			// download re-attempts.
			metrics.ResizesTotal.WithLabelValues(cover.Category.String(), "skipped_no_source").Inc()
			logging.Debug("No original %s cover for item %d, skipping %dpx variant",
				cover.Category, item.ID, height)
			continue
		}

		start := time.Now()
		err := s.resizer.Resize(sourcePath, variantPath, height)
		metrics.ResizeDuration.WithLabelValues(cover.Category.String()).Observe(time.Since(start).Seconds())

		if err != nil {
			// The unresized original remains the implicit fallback.
			metrics.ResizesTotal.WithLabelValues(cover.Category.String(), "error").Inc()
			logging.Debug("Failed to resize %s cover for item %d to %dpx: %v",
				cover.Category, item.ID, height, err)
			continue
		}
		metrics.ResizesTotal.WithLabelValues(cover.Category.String(), "success").Inc()
	}
}

// variantOK reports whether a resized variant is present and non-empty.
// A zero-length file counts as "not yet generated".
func variantOK(path string) bool {
	size, err := filesystem.Size(path)
	return err == nil && size > 0
}

// ConvertToLocalURLs rewrites each cover's LocalURL to the local serving
// URL, appending a cache-busting lastWrite parameter when the canonical
// original exists on disk. Never touches the network; idempotent.
func (s *Service) ConvertToLocalURLs(itemID int64, covers []Cover) {
	for i := range covers {
		covers[i].LocalURL = s.localURL(itemID, covers[i].Category)
	}
}

func (s *Service) localURL(itemID int64, category Category) string {
	url := fmt.Sprintf("%s/MediaCover/%d/%s.jpg", s.urlBase, itemID, category)

	if mtime, err := filesystem.LastModified(s.paths.CoverPath(itemID, category)); err == nil {
		url = fmt.Sprintf("%s?lastWrite=%d", url, mtime.Unix())
	}
	return url
}
