// Package filesystem wraps the handful of disk operations the cover cache
// performs (stat, recursive delete, directory creation, rename) behind
// functions that record operation metrics through a pluggable Observer.
//
// The cache stores plain image files with no sidecar metadata, so these
// primitives are the entire persistence surface of the service.
package filesystem
