package workers

import (
	"os"
	"runtime"
	"strconv"
)

// Count returns the optimal number of workers for a given task type.
// It respects container CPU limits via GOMAXPROCS (Go 1.19+).
//
// The multiplier adjusts for task characteristics:
//   - 0.5 for heavy CPU-bound tasks that should leave headroom
//   - 1.0 for CPU-bound tasks
//   - 2.0 for I/O-bound tasks
//
// The limit parameter caps the worker count to prevent resource exhaustion.
// Use 0 for no limit.
//
// Can be overridden with the RESIZE_WORKERS environment variable.
func Count(multiplier float64, limit int) int {
	if override := os.Getenv("RESIZE_WORKERS"); override != "" {
		if count, err := strconv.Atoi(override); err == nil && count > 0 {
			if limit > 0 && count > limit {
				return limit
			}
			return count
		}
	}

	// GOMAXPROCS is automatically set to container CPU limit in Go 1.19+
	available := runtime.GOMAXPROCS(0)

	// Round up so a single-CPU host still gets one worker
	workers := int(float64(available)*multiplier + 0.5)

	if workers < 1 {
		workers = 1
	}
	if limit > 0 && workers > limit {
		workers = limit
	}

	return workers
}

// ForResize returns the admission-gate capacity for image resize work:
// half the available compute units, rounded up, minimum 1. Resizing is
// CPU-heavy enough that using every core starves the rest of the host.
func ForResize() int {
	return Count(0.5, 0)
}

// ForIO returns worker count for I/O-bound tasks (2 per CPU).
// The limit parameter caps the maximum number of workers.
func ForIO(limit int) int {
	return Count(2.0, limit)
}
