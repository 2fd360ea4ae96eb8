//go:build amd64 && amd64.v4

package multiversion

// GOAMD64=v4.
func init() {
	staticEnable("avx512f", "avx512bw", "avx512cd", "avx512dq", "avx512vl")
}
