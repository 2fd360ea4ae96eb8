//go:build amd64 || 386

package cpu

import "golang.org/x/sys/cpu"

// hostFeatures maps target-specification feature names to live x86 probes.
// x/sys/cpu populates its flags at package init, so the closures just read
// the struct. Names missing here (xsave, lzcnt, sha, ...) go through the
// cpuid fallback.
var hostFeatures = map[string]func() bool{
	"sse2":        func() bool { return cpu.X86.HasSSE2 },
	"sse3":        func() bool { return cpu.X86.HasSSE3 },
	"ssse3":       func() bool { return cpu.X86.HasSSSE3 },
	"sse4.1":      func() bool { return cpu.X86.HasSSE41 },
	"sse4.2":      func() bool { return cpu.X86.HasSSE42 },
	"avx":         func() bool { return cpu.X86.HasAVX },
	"avx2":        func() bool { return cpu.X86.HasAVX2 },
	"avx512f":     func() bool { return cpu.X86.HasAVX512F },
	"avx512bw":    func() bool { return cpu.X86.HasAVX512BW },
	"avx512cd":    func() bool { return cpu.X86.HasAVX512CD },
	"avx512dq":    func() bool { return cpu.X86.HasAVX512DQ },
	"avx512vl":    func() bool { return cpu.X86.HasAVX512VL },
	"aes":         func() bool { return cpu.X86.HasAES },
	"pclmulqdq":   func() bool { return cpu.X86.HasPCLMULQDQ },
	"popcnt":      func() bool { return cpu.X86.HasPOPCNT },
	"fma":         func() bool { return cpu.X86.HasFMA },
	"bmi1":        func() bool { return cpu.X86.HasBMI1 },
	"bmi2":        func() bool { return cpu.X86.HasBMI2 },
	"adx":         func() bool { return cpu.X86.HasADX },
	"rdrand":      func() bool { return cpu.X86.HasRDRAND },
	"rdseed":      func() bool { return cpu.X86.HasRDSEED },
	"cmpxchg16b":  func() bool { return cpu.X86.HasCX16 },
	"erms":        func() bool { return cpu.X86.HasERMS },
	"osxsave":     func() bool { return cpu.X86.HasOSXSAVE },
	"avx512vnni":  func() bool { return cpu.X86.HasAVX512VNNI },
	"avx512vbmi":  func() bool { return cpu.X86.HasAVX512VBMI },
	"avx512bf16":  func() bool { return cpu.X86.HasAVX512BF16 },
	"avx512vbmi2": func() bool { return cpu.X86.HasAVX512VBMI2 },
}
