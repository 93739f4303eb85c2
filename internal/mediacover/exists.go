package mediacover

import (
	"net/http"
	"time"

	"cover-cache/internal/filesystem"
	"cover-cache/internal/logging"
)

// ExistsChecker decides whether a cached original is still valid for a
// remote URL. Returning true means "skip the download", so implementations
// must never report a missing or zero-length file as fresh and should
// prefer false when uncertain.
type ExistsChecker interface {
	AlreadyExists(remoteURL, localPath string) bool
}

// SizeChecker is the default staleness strategy: the local file must exist
// with non-zero size, and when a HEAD request on the remote reports a
// Content-Length it must match the local size. HEAD failures and missing
// headers degrade to local-existence-only rather than forcing a re-download
// of every cover each pass.
type SizeChecker struct {
	client *http.Client
}

// NewSizeChecker creates the default checker with the given HEAD timeout.
func NewSizeChecker(timeout time.Duration) *SizeChecker {
	return &SizeChecker{
		client: &http.Client{Timeout: timeout},
	}
}

// AlreadyExists implements ExistsChecker.
func (c *SizeChecker) AlreadyExists(remoteURL, localPath string) bool {
	localSize, err := filesystem.Size(localPath)
	if err != nil || localSize == 0 {
		return false
	}

	resp, err := c.client.Head(remoteURL)
	if err != nil {
		logging.Debug("HEAD %s failed (%v), trusting local copy", remoteURL, err)
		return true
	}
	defer resp.Body.Close()

	if resp.ContentLength <= 0 {
		return true
	}
	if resp.ContentLength != localSize {
		logging.Debug("Remote size %d differs from local %d for %s, re-downloading",
			resp.ContentLength, localSize, remoteURL)
		return false
	}
	return true
}

// LocalOnlyChecker skips the remote round-trip entirely: a cover is fresh
// when a non-empty local file exists. Useful on metered or flaky links.
type LocalOnlyChecker struct{}

// AlreadyExists implements ExistsChecker.
func (LocalOnlyChecker) AlreadyExists(_, localPath string) bool {
	size, err := filesystem.Size(localPath)
	return err == nil && size > 0
}
