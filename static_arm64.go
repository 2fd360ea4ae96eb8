//go:build arm64

package multiversion

// NEON is part of the ARMv8-A base architecture, so every arm64 binary may
// assume it.
func init() {
	staticEnable("neon", "fp")
}
