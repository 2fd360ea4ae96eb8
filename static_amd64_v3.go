//go:build amd64 && amd64.v3

package multiversion

// GOAMD64=v3 and above.
func init() {
	staticEnable("avx", "avx2", "bmi1", "bmi2", "f16c", "fma", "lzcnt", "movbe", "xsave")
}
