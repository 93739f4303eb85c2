package handlers

import (
	"net/http"
	"path/filepath"
	"regexp"
	"strconv"

	"cover-cache/internal/events"
	"cover-cache/internal/filesystem"
	"cover-cache/internal/mediacover"

	"github.com/gorilla/mux"
)

// coverFilePattern matches the only filenames the cache ever produces:
// <category>.jpg and <category>-<height>.jpg. Anything else is rejected
// before touching the filesystem, which also rules out traversal.
var coverFilePattern = regexp.MustCompile(`^([a-z]+)(?:-(\d{1,4}))?\.jpg$`)

// GetCover serves a cached cover file: GET /MediaCover/{itemId}/{filename}.
// Responses carry a long max-age because local URLs are cache-busted with
// the original's lastWrite timestamp.
func (h *Handlers) GetCover(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	itemID, err := strconv.ParseInt(vars["itemId"], 10, 64)
	if err != nil || itemID <= 0 {
		writeError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	filename := vars["filename"]
	m := coverFilePattern.FindStringSubmatch(filename)
	if m == nil {
		writeError(w, http.StatusBadRequest, "invalid cover filename")
		return
	}

	category := mediacover.ParseCategory(m[1])
	if category == mediacover.CategoryUnknown {
		writeError(w, http.StatusNotFound, "unknown cover category")
		return
	}

	var path string
	if m[2] != "" {
		height, _ := strconv.Atoi(m[2])
		path = h.service.Paths().ResizedCoverPath(itemID, category, height)
	} else {
		path = h.service.Paths().CoverPath(itemID, category)
	}

	if !filesystem.Exists(path) {
		// Variant missing: fall back to the canonical original when it
		// exists, rather than 404ing a resize that failed.
		original := h.service.Paths().CoverPath(itemID, category)
		if m[2] == "" || !filesystem.Exists(original) {
			writeError(w, http.StatusNotFound, "cover not cached")
			return
		}
		path = original
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	http.ServeFile(w, r, filepath.Clean(path))
}

// UpdateItem accepts an item payload and schedules a cover cache refresh:
// POST /api/items/updated. Returns 202 immediately; the work happens on the
// event bus.
func (h *Handlers) UpdateItem(w http.ResponseWriter, r *http.Request) {
	item, ok := decodeItem(w, r)
	if !ok {
		return
	}

	events.PublishAsync(h.bus, mediacover.ItemUpdated{Item: item})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	writeJSON(w, map[string]interface{}{"status": "accepted", "itemId": item.ID})
}

// DeleteItem accepts an item payload and schedules a cache purge:
// POST /api/items/deleted.
func (h *Handlers) DeleteItem(w http.ResponseWriter, r *http.Request) {
	item, ok := decodeItem(w, r)
	if !ok {
		return
	}

	events.PublishAsync(h.bus, mediacover.ItemDeleted{Item: item})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	writeJSON(w, map[string]interface{}{"status": "accepted", "itemId": item.ID})
}

// LocalURLs rewrites the posted covers to local serving URLs:
// POST /api/items/{id}/localurls. Read-only against the filesystem.
func (h *Handlers) LocalURLs(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	itemID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil || itemID <= 0 {
		writeError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	var covers []mediacover.Cover
	if err := decodeBody(r, &covers); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.service.ConvertToLocalURLs(itemID, covers)

	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, covers)
}
