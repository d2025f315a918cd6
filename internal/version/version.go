// Package version carries the application version, overridable at build
// time via -ldflags.
package version

// Version is the application version string.
var Version = "1.0.0"
