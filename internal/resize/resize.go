package resize

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"os"
	"path/filepath"

	"cover-cache/internal/filesystem"
	"cover-cache/internal/logging"

	_ "image/gif"
	_ "image/png"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

// jpegQuality matches the quality used for cached originals so variants do
// not degrade visibly against the source.
const jpegQuality = 95

// Resizer scales an image file to a target height, preserving aspect ratio.
type Resizer interface {
	Resize(sourcePath, destPath string, height int) error
}

// ImageResizer resizes covers with libvips when available and falls back to
// pure-Go decoding otherwise. The zero value is not usable; call New.
type ImageResizer struct{}

// New creates an ImageResizer. InitVips should have been attempted before
// the first Resize call; if it failed, the imaging fallback is used.
func New() *ImageResizer {
	return &ImageResizer{}
}

// Resize scales sourcePath to height pixels tall and writes the result as
// JPEG to destPath. The output is written to a temp file first and renamed
// into place so a failed resize never leaves a truncated variant.
func (r *ImageResizer) Resize(sourcePath, destPath string, height int) error {
	if height <= 0 {
		return fmt.Errorf("invalid target height %d", height)
	}

	var data []byte
	var err error

	if IsVipsAvailable() {
		data, err = resizeWithVips(sourcePath, height)
		if err != nil {
			logging.Debug("vips resize failed for %s: %v, falling back to imaging", sourcePath, err)
			data, err = resizeWithImaging(sourcePath, height)
		}
	} else {
		data, err = resizeWithImaging(sourcePath, height)
	}
	if err != nil {
		return err
	}

	tmpPath := destPath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write resized image: %w", err)
	}
	if err := filesystem.MoveFile(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return err
	}

	logging.Debug("Resized %s -> %s (height %d, %d bytes)",
		filepath.Base(sourcePath), filepath.Base(destPath), height, len(data))
	return nil
}

// resizeWithImaging is the pure-Go path: full decode, Lanczos scale, JPEG encode.
func resizeWithImaging(sourcePath string, height int) ([]byte, error) {
	img, err := imaging.Open(sourcePath, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to open image %s: %w", sourcePath, err)
	}

	// Width 0 preserves aspect ratio
	scaled := imaging.Resize(img, 0, height, imaging.Lanczos)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, scaled, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("failed to encode resized image: %w", err)
	}
	return buf.Bytes(), nil
}
