//go:build amd64

package multiversion

// x86-64 baseline (GOAMD64=v1).
func init() {
	staticEnable("sse", "sse2")
}
