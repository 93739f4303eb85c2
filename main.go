package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"cover-cache/internal/events"
	"cover-cache/internal/filesystem"
	"cover-cache/internal/handlers"
	"cover-cache/internal/logging"
	"cover-cache/internal/mediacover"
	"cover-cache/internal/metrics"
	"cover-cache/internal/middleware"
	"cover-cache/internal/resize"
	"cover-cache/internal/startup"
	"cover-cache/internal/workers"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	startTime := time.Now()

	// Load configuration
	config, err := startup.LoadConfig()
	if err != nil {
		startup.LogFatal("Configuration error: %v", err)
	}

	// Wire filesystem metrics
	filesystem.SetObserver(metrics.NewFilesystemObserver())
	metrics.InitializeMetrics()
	metrics.SetAppInfo(startup.Version, startup.Commit, runtime.Version())

	// Initialize libvips for resizing; the imaging fallback covers hosts
	// without it
	if err := resize.InitVips(); err != nil {
		logging.Warn("libvips unavailable, using pure-Go resizer: %v", err)
	}
	defer resize.ShutdownVips()

	// Build the cover cache pipeline
	bus := events.NewBus()
	downloader := mediacover.NewHTTPDownloader(config.DownloadTimeout)

	var checker mediacover.ExistsChecker
	if config.StalenessCheck == "local" {
		checker = mediacover.LocalOnlyChecker{}
	} else {
		checker = mediacover.NewSizeChecker(config.DownloadTimeout)
	}

	gateCapacity := workers.ForResize()
	logging.Info("Resize admission gate capacity: %d", gateCapacity)

	service := mediacover.NewService(
		config.URLBase,
		config.CacheDir,
		downloader,
		resize.New(),
		checker,
		bus,
		gateCapacity,
	)
	service.RegisterHandlers()

	// Initialize handlers and router
	h := handlers.New(service, bus)
	router := setupRouter(h)

	mwConfig := middleware.DefaultConfig()
	mwConfig.LogHealthChecks = config.LogHealthChecks
	handler := middleware.Logger(mwConfig)(middleware.Metrics(mwConfig)(router))

	// Metrics on a separate listener so scrapes never contend with cover
	// serving
	if config.MetricsEnabled {
		go func() {
			metricsMux := http.NewServeMux()
			metricsMux.Handle("/metrics", promhttp.Handler())
			logging.Info("Metrics server listening on :%s", config.MetricsPort)
			if err := http.ListenAndServe(":"+config.MetricsPort, metricsMux); err != nil {
				logging.Error("Metrics server error: %v", err)
			}
		}()
	}

	srv := &http.Server{
		Addr:         ":" + config.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go handleShutdown(srv)

	logging.Info("cover-cache listening on :%s (startup took %v)", config.Port, time.Since(startTime))
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		startup.LogFatal("Server error: %v", err)
	}
}

func setupRouter(h *handlers.Handlers) *mux.Router {
	r := mux.NewRouter()

	// Health and version
	r.HandleFunc("/health", h.HealthCheck).Methods("GET")
	r.HandleFunc("/healthz", h.HealthCheck).Methods("GET")
	r.HandleFunc("/livez", h.LivenessCheck).Methods("GET", "HEAD")
	r.HandleFunc("/version", h.GetVersion).Methods("GET")

	// Cached cover serving
	r.HandleFunc("/MediaCover/{itemId}/{filename}", h.GetCover).Methods("GET")

	// Item lifecycle ingestion
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/items/updated", h.UpdateItem).Methods("POST")
	api.HandleFunc("/items/deleted", h.DeleteItem).Methods("POST")
	api.HandleFunc("/items/{id}/localurls", h.LocalURLs).Methods("POST")

	return r
}

func handleShutdown(srv *http.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan

	logging.Info("Received %s, shutting down", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Warn("Server shutdown error: %v", err)
	}
}
