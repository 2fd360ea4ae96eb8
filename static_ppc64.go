//go:build (ppc64 && ppc64.power8) || (ppc64le && ppc64le.power8)

package multiversion

// GOPPC64=power8 and above. The feature-level tags are spelled per GOARCH
// (ppc64.power8 on big-endian, ppc64le.power8 on little-endian), so both
// spellings are needed. power8 is the toolchain minimum on either GOARCH.
func init() {
	staticEnable("altivec", "vsx", "power8")
}
