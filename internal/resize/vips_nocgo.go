//go:build !cgo

package resize

import "fmt"

// govips binds libvips through cgo, so a CGO_ENABLED=0 build cannot use the
// vips backend at all. These stubs keep the package compiling and steer every
// Resize call onto the pure-Go imaging fallback.

// InitVips reports that the vips backend is unavailable in this build.
func InitVips() error {
	return fmt.Errorf("libvips backend unavailable: binary built without cgo")
}

// ShutdownVips is a no-op without the vips backend.
func ShutdownVips() {}

// IsVipsAvailable always returns false without the vips backend.
func IsVipsAvailable() bool {
	return false
}

// resizeWithVips is never reached because IsVipsAvailable returns false; it
// exists so resize.go compiles identically in both build modes.
func resizeWithVips(path string, height int) ([]byte, error) {
	return nil, fmt.Errorf("libvips backend unavailable: binary built without cgo")
}
