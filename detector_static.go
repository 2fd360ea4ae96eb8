//go:build multiversion_static

package multiversion

// DefaultDetector returns the Detector dispatch tables use when none is
// supplied. The multiversion_static build tag is set, so only features the
// toolchain enabled unconditionally at build time are trusted.
func DefaultDetector() Detector { return Static() }
