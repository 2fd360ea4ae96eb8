//go:build !amd64 && !386 && !arm64 && !arm && !ppc64 && !ppc64le && !mips64 && !mips64le

package cpu

// No probe table: feature-bearing target specifications never match on this
// architecture and dispatch always takes the default implementation.
var hostFeatures map[string]func() bool
