//go:build (ppc64 && ppc64.power9) || (ppc64le && ppc64le.power9)

package multiversion

// GOPPC64=power9 and above.
func init() {
	staticEnable("power9")
}
