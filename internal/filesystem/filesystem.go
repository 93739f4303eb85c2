package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Exists reports whether path exists. Any stat error other than
// "not exist" is treated as absent, which biases callers toward
// regenerating content rather than trusting an unreadable file.
func Exists(path string) bool {
	start := time.Now()
	_, err := os.Stat(path)
	record("stat", start, err)
	return err == nil
}

// Size returns the size in bytes of the file at path.
func Size(path string) (int64, error) {
	start := time.Now()
	info, err := os.Stat(path)
	record("stat", start, err)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// LastModified returns the modification time of the file at path.
func LastModified(path string) (time.Time, error) {
	start := time.Now()
	info, err := os.Stat(path)
	record("stat", start, err)
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}

// DeleteRecursive removes path and everything beneath it. Removing a path
// that does not exist is not an error.
func DeleteRecursive(path string) error {
	start := time.Now()
	err := os.RemoveAll(path)
	record("delete", start, err)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", path, err)
	}
	return nil
}

// EnsureDir creates dir (and parents) if it does not already exist.
func EnsureDir(dir string) error {
	start := time.Now()
	err := os.MkdirAll(dir, 0755)
	record("mkdir", start, err)
	if err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// MoveFile renames src to dst, creating dst's parent directory first.
// Used to publish temp files atomically into the cache.
func MoveFile(src, dst string) error {
	if err := EnsureDir(filepath.Dir(dst)); err != nil {
		return err
	}
	start := time.Now()
	err := os.Rename(src, dst)
	record("rename", start, err)
	if err != nil {
		return fmt.Errorf("failed to move %s to %s: %w", src, dst, err)
	}
	return nil
}

// record is a nil-safe metrics hook for a completed operation.
func record(operation string, start time.Time, err error) {
	if o := observe(); o != nil {
		o.ObserveOperation(operation, time.Since(start).Seconds(), err)
	}
}
