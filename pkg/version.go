// Package gnzoo keeps version information of the gnzoo application.
package gnzoo

var (
	// Version is the version of gnzoo, set by build flags.
	Version = "v0.1.0"
	// Build is a timestamp of the build, set by build flags.
	Build = "n/a"
)
