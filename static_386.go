//go:build 386 && 386.sse2

package multiversion

// GO386=sse2.
func init() {
	staticEnable("sse", "sse2")
}
