// Package handlers implements the HTTP surface of the cover cache service:
// cached cover serving under /MediaCover, item lifecycle ingestion under
// /api/items, and health/version endpoints.
package handlers
