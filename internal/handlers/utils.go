package handlers

import (
	"encoding/json"
	"net/http"

	"cover-cache/internal/mediacover"
)

// maxBodyBytes caps item payloads; cover lists are tiny.
const maxBodyBytes = 1 << 20

// decodeBody decodes a JSON request body into v
func decodeBody(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// decodeItem decodes and validates an item payload, writing the error
// response itself when the payload is unusable.
func decodeItem(w http.ResponseWriter, r *http.Request) (mediacover.Item, bool) {
	var item mediacover.Item
	if err := decodeBody(r, &item); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return item, false
	}
	if item.ID <= 0 {
		writeError(w, http.StatusBadRequest, "item id must be positive")
		return item, false
	}
	return item, true
}
