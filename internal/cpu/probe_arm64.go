//go:build arm64

package cpu

import "golang.org/x/sys/cpu"

// hostFeatures maps target-specification feature names to aarch64 hwcap
// probes. NEON (ASIMD) is mandatory on ARMv8-A, but it is probed rather
// than assumed so the map stays uniform.
var hostFeatures = map[string]func() bool{
	"neon":    func() bool { return cpu.ARM64.HasASIMD },
	"fp":      func() bool { return cpu.ARM64.HasFP },
	"fp16":    func() bool { return cpu.ARM64.HasFPHP },
	"aes":     func() bool { return cpu.ARM64.HasAES },
	"pmull":   func() bool { return cpu.ARM64.HasPMULL },
	"sha2":    func() bool { return cpu.ARM64.HasSHA2 },
	"sha3":    func() bool { return cpu.ARM64.HasSHA3 },
	"crc":     func() bool { return cpu.ARM64.HasCRC32 },
	"lse":     func() bool { return cpu.ARM64.HasATOMICS },
	"rdm":     func() bool { return cpu.ARM64.HasASIMDRDM },
	"dotprod": func() bool { return cpu.ARM64.HasASIMDDP },
	"fhm":     func() bool { return cpu.ARM64.HasASIMDFHM },
	"jsconv":  func() bool { return cpu.ARM64.HasJSCVT },
	"fcma":    func() bool { return cpu.ARM64.HasFCMA },
	"rcpc":    func() bool { return cpu.ARM64.HasLRCPC },
	"dpb":     func() bool { return cpu.ARM64.HasDCPOP },
	"sm4":     func() bool { return cpu.ARM64.HasSM4 },
	"sve":     func() bool { return cpu.ARM64.HasSVE },
}
