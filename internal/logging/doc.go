// Package logging provides leveled logging for the cover cache service.
//
// The level is read once from the LOG_LEVEL environment variable (debug,
// info, warn, error), with DEBUG=true as a shortcut for debug. The default
// level is info.
package logging
