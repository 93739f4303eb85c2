package startup

import (
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CACHE_DIR", dir)
	t.Setenv("URL_BASE", "")
	t.Setenv("PORT", "")
	t.Setenv("METRICS_PORT", "")
	t.Setenv("METRICS_ENABLED", "")
	t.Setenv("DOWNLOAD_TIMEOUT", "")
	t.Setenv("STALENESS_CHECK", "")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if config.Port != "8080" {
		t.Errorf("Port = %s, want 8080", config.Port)
	}
	if config.MetricsPort != "9090" {
		t.Errorf("MetricsPort = %s, want 9090", config.MetricsPort)
	}
	if !config.MetricsEnabled {
		t.Error("MetricsEnabled = false, want true by default")
	}
	if config.DownloadTimeout != 30*time.Second {
		t.Errorf("DownloadTimeout = %v, want 30s", config.DownloadTimeout)
	}
	if config.StalenessCheck != "size" {
		t.Errorf("StalenessCheck = %s, want size", config.StalenessCheck)
	}
}

func TestLoadConfigCreatesCacheDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "cache")
	t.Setenv("CACHE_DIR", dir)

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if config.CacheDir != dir {
		t.Errorf("CacheDir = %s, want %s", config.CacheDir, dir)
	}
}

func TestLoadConfigTrimsURLBase(t *testing.T) {
	t.Setenv("CACHE_DIR", t.TempDir())
	t.Setenv("URL_BASE", "http://media.example/covers/")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if config.URLBase != "http://media.example/covers" {
		t.Errorf("URLBase = %s, trailing slash not trimmed", config.URLBase)
	}
}

func TestLoadConfigInvalidValuesFallBack(t *testing.T) {
	t.Setenv("CACHE_DIR", t.TempDir())
	t.Setenv("DOWNLOAD_TIMEOUT", "not-a-duration")
	t.Setenv("STALENESS_CHECK", "psychic")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if config.DownloadTimeout != 30*time.Second {
		t.Errorf("DownloadTimeout = %v, want 30s fallback", config.DownloadTimeout)
	}
	if config.StalenessCheck != "size" {
		t.Errorf("StalenessCheck = %s, want size fallback", config.StalenessCheck)
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value    string
		fallback bool
		want     bool
	}{
		{"true", false, true},
		{"1", false, true},
		{"on", false, true},
		{"false", true, false},
		{"0", true, false},
		{"", true, true},
		{"maybe", false, false},
	}

	for _, tt := range tests {
		t.Setenv("TEST_BOOL", tt.value)
		if got := getEnvBool("TEST_BOOL", tt.fallback); got != tt.want {
			t.Errorf("getEnvBool(%q, %v) = %v, want %v", tt.value, tt.fallback, got, tt.want)
		}
	}
}

func TestGetBuildInfo(t *testing.T) {
	info := GetBuildInfo()
	if info.Version == "" || info.GoVersion == "" {
		t.Errorf("BuildInfo incomplete: %+v", info)
	}
}
