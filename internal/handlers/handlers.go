package handlers

import (
	"encoding/json"
	"net/http"

	"cover-cache/internal/events"
	"cover-cache/internal/logging"
	"cover-cache/internal/mediacover"
)

// Handlers holds dependencies for all HTTP handlers
type Handlers struct {
	service *mediacover.Service
	bus     *events.Bus
}

// New creates a new Handlers instance
func New(service *mediacover.Service, bus *events.Bus) *Handlers {
	return &Handlers{
		service: service,
		bus:     bus,
	}
}

// writeJSON writes v as a JSON response body
func writeJSON(w http.ResponseWriter, v interface{}) {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Warn("Failed to write JSON response: %v", err)
	}
}

// writeError writes a JSON error response with the given status
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	writeJSON(w, map[string]string{"error": message})
}
