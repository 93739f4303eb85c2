package mediacover

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestHTTPDownloaderSuccess(t *testing.T) {
	payload := []byte("jpeg bytes")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write(payload)
	}))
	defer srv.Close()

	// Parent directory does not exist yet; the downloader must create it
	dest := filepath.Join(t.TempDir(), "42", "poster.jpg")
	d := NewHTTPDownloader(5 * time.Second)

	if err := d.DownloadToFile(context.Background(), srv.URL+"/poster.jpg", dest); err != nil {
		t.Fatalf("DownloadToFile failed: %v", err)
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("downloaded file missing: %v", err)
	}
	if string(data) != string(payload) {
		t.Errorf("downloaded content = %q, want %q", data, payload)
	}

	// No temp file left behind
	if _, err := os.Stat(dest + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file was not cleaned up")
	}
}

func TestHTTPDownloaderStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "poster.jpg")
	d := NewHTTPDownloader(5 * time.Second)

	err := d.DownloadToFile(context.Background(), srv.URL+"/poster.jpg", dest)
	if err == nil {
		t.Fatal("expected error for 404 response")
	}

	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected *TransportError, got %T: %v", err, err)
	}
	if transportErr.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", transportErr.StatusCode)
	}

	if _, statErr := os.Stat(dest); !os.IsNotExist(statErr) {
		t.Error("failed download left a file behind")
	}
}

func TestHTTPDownloaderNetworkError(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "poster.jpg")
	d := NewHTTPDownloader(100 * time.Millisecond)

	err := d.DownloadToFile(context.Background(), "http://127.0.0.1:0/poster.jpg", dest)
	if err == nil {
		t.Fatal("expected error for unreachable host")
	}

	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected *TransportError, got %T: %v", err, err)
	}
}

func TestHTTPDownloaderRespectsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(2 * time.Second)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	d := NewHTTPDownloader(0)
	err := d.DownloadToFile(ctx, srv.URL+"/poster.jpg", filepath.Join(t.TempDir(), "poster.jpg"))
	if err == nil {
		t.Fatal("expected error from cancelled context")
	}
}
