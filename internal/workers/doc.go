// Package workers calculates worker pool and admission-gate sizes from the
// compute resources actually available to the process.
//
// Sizing is based on GOMAXPROCS rather than runtime.NumCPU so container CPU
// limits are respected. The RESIZE_WORKERS environment variable overrides
// the calculation for operators who know better than the heuristic.
package workers
