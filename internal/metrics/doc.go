// Package metrics declares the Prometheus metrics exported by the cover
// cache service and provides observer implementations for packages that
// cannot import this one directly.
package metrics
