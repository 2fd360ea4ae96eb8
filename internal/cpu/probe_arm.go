//go:build arm

package cpu

import "golang.org/x/sys/cpu"

// hostFeatures maps target-specification feature names to 32-bit ARM hwcap
// probes.
var hostFeatures = map[string]func() bool{
	"neon":  func() bool { return cpu.ARM.HasNEON },
	"vfp4":  func() bool { return cpu.ARM.HasVFPv4 },
	"aes":   func() bool { return cpu.ARM.HasAES },
	"pmull": func() bool { return cpu.ARM.HasPMULL },
	"sha2":  func() bool { return cpu.ARM.HasSHA2 },
	"crc":   func() bool { return cpu.ARM.HasCRC32 },
}
