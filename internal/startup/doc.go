// Package startup handles environment-driven configuration and build
// information for the cover cache service.
package startup
