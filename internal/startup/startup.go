package startup

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"cover-cache/internal/logging"
)

// Build-time variables (injected via -ldflags)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
	GoVersion = runtime.Version()
)

// BuildInfo contains version and build information
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

// GetBuildInfo returns the current build information
func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: GoVersion,
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

// Config holds all application configuration
type Config struct {
	CacheDir        string
	URLBase         string
	Port            string
	MetricsPort     string
	MetricsEnabled  bool
	LogHealthChecks bool
	DownloadTimeout time.Duration
	// StalenessCheck selects the re-download strategy: "size" issues a
	// HEAD and compares Content-Length, "local" trusts any non-empty file.
	StalenessCheck string
}

// LoadConfig loads and validates configuration from environment variables
func LoadConfig() (*Config, error) {
	logging.Info("cover-cache %s (commit %s, built %s, %s %s/%s)",
		Version, Commit, BuildTime, GoVersion, runtime.GOOS, runtime.GOARCH)

	logging.Info("------------------------------------------------------------")
	logging.Info("CONFIGURATION")
	logging.Info("------------------------------------------------------------")

	cacheDir := getEnv("CACHE_DIR", "/cache")
	urlBase := strings.TrimRight(getEnv("URL_BASE", ""), "/")
	port := getEnv("PORT", "8080")
	metricsPort := getEnv("METRICS_PORT", "9090")
	metricsEnabled := getEnvBool("METRICS_ENABLED", true)
	logHealthChecks := getEnvBool("LOG_HEALTH_CHECKS", false)
	downloadTimeoutStr := getEnv("DOWNLOAD_TIMEOUT", "30s")
	stalenessCheck := getEnv("STALENESS_CHECK", "size")

	logging.Info("  CACHE_DIR:        %s", cacheDir)
	logging.Info("  URL_BASE:         %s", urlBase)
	logging.Info("  PORT:             %s", port)
	logging.Info("  METRICS_PORT:     %s", metricsPort)
	logging.Info("  METRICS_ENABLED:  %v", metricsEnabled)
	logging.Info("  DOWNLOAD_TIMEOUT: %s", downloadTimeoutStr)
	logging.Info("  STALENESS_CHECK:  %s", stalenessCheck)
	logging.Info("  LOG_LEVEL:        %s", logging.GetLevel())

	downloadTimeout, err := time.ParseDuration(downloadTimeoutStr)
	if err != nil {
		logging.Warn("  Invalid DOWNLOAD_TIMEOUT, using default: 30s")
		downloadTimeout = 30 * time.Second
	}

	if stalenessCheck != "size" && stalenessCheck != "local" {
		logging.Warn("  Invalid STALENESS_CHECK %q, using default: size", stalenessCheck)
		stalenessCheck = "size"
	}

	cacheDir, err = filepath.Abs(cacheDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve cache directory path: %w", err)
	}

	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory %s: %w", cacheDir, err)
	}
	logging.Info("  Cache directory (absolute): %s", cacheDir)

	return &Config{
		CacheDir:        cacheDir,
		URLBase:         urlBase,
		Port:            port,
		MetricsPort:     metricsPort,
		MetricsEnabled:  metricsEnabled,
		LogHealthChecks: logHealthChecks,
		DownloadTimeout: downloadTimeout,
		StalenessCheck:  stalenessCheck,
	}, nil
}

// LogFatal logs a fatal startup error and exits
func LogFatal(format string, args ...interface{}) {
	logging.Fatal(format, args...)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	switch strings.ToLower(value) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}
