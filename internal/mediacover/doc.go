// Package mediacover maintains the on-disk cover-art cache for tracked
// media items.
//
// For each item the service downloads every remote cover once, stores the
// canonical original at <root>/<itemId>/<category>.jpg, derives resized
// variants at <category>-<height>.jpg per the category's resize policy, and
// rewrites cover URLs so consumers read from local, cache-busted paths.
//
// Downloads are network-bound and run unrestricted; resize work across all
// items shares one bounded admission gate sized from the host's compute
// units. Per-cover and per-height failures are isolated: they are logged,
// counted, and never abort sibling covers or other items.
package mediacover
