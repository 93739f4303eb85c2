package handlers

import (
	"net/http"

	"cover-cache/internal/startup"
)

// GetVersion returns build and version information
func (h *Handlers) GetVersion(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, startup.GetBuildInfo())
}
