//go:build ppc64 || ppc64le

package cpu

import "golang.org/x/sys/cpu"

// hostFeatures for POWER. AltiVec and VSX are part of the POWER8 baseline
// the Go toolchain requires, so they always hold.
var hostFeatures = map[string]func() bool{
	"altivec": func() bool { return true },
	"vsx":     func() bool { return true },
	"power8":  func() bool { return cpu.PPC64.IsPOWER8 },
	"power9":  func() bool { return cpu.PPC64.IsPOWER9 },
	"darn":    func() bool { return cpu.PPC64.HasDARN },
}
