package mediacover

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"cover-cache/internal/filesystem"
)

// TransportError marks a download failure caused by the network or the
// remote server, as opposed to a local fault. Callers use errors.As to
// decide the logging level.
type TransportError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("download of %s failed: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("download of %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Downloader fetches remote bytes to a local path.
type Downloader interface {
	DownloadToFile(ctx context.Context, url, path string) error
}

// HTTPDownloader implements Downloader with net/http. Downloads land in a
// temp file and are renamed into place so a torn transfer never looks like
// a valid original.
type HTTPDownloader struct {
	client *http.Client
}

// NewHTTPDownloader creates a downloader with the given total-request
// timeout. A zero timeout means no client-side limit.
func NewHTTPDownloader(timeout time.Duration) *HTTPDownloader {
	return &HTTPDownloader{
		client: &http.Client{Timeout: timeout},
	}
}

// DownloadToFile fetches url into path. Network failures and non-2xx
// responses are returned as *TransportError.
func (d *HTTPDownloader) DownloadToFile(ctx context.Context, url, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("invalid download URL %s: %w", url, err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return &TransportError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &TransportError{URL: url, StatusCode: resp.StatusCode}
	}

	if err := filesystem.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}

	tmpPath := path + ".tmp"
	out, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", tmpPath, err)
	}

	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		os.Remove(tmpPath)
		return &TransportError{URL: url, Err: err}
	}
	if err := out.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to finish writing %s: %w", tmpPath, err)
	}

	if err := filesystem.MoveFile(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
