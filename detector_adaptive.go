//go:build !multiversion_static

package multiversion

// DefaultDetector returns the Detector dispatch tables use when none is
// supplied. Adaptive in ordinary builds; the multiversion_static build tag
// switches the whole binary to static detection.
func DefaultDetector() Detector { return Adaptive() }
