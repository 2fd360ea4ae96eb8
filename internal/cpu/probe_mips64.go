//go:build mips64 || mips64le

package cpu

import "golang.org/x/sys/cpu"

// hostFeatures for MIPS64. The MSA SIMD extension is the only capability
// the runtime exposes.
var hostFeatures = map[string]func() bool{
	"msa": func() bool { return cpu.MIPS64X.HasMSA },
}
