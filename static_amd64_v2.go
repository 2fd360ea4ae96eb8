//go:build amd64 && amd64.v2

package multiversion

// GOAMD64=v2 and above.
func init() {
	staticEnable("popcnt", "sse3", "ssse3", "sse4.1", "sse4.2", "cmpxchg16b")
}
