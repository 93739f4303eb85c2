// Package resize generates height-constrained JPEG derivatives of cached
// cover originals.
//
// Two backends are supported: libvips (preferred, decode-time shrinking)
// and a pure-Go fallback built on disintegration/imaging with webp decode
// support. Backend selection happens per call so a vips failure on one
// malformed file degrades gracefully instead of poisoning the process.
package resize
