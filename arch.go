// Copyright 2026 multiversion Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package multiversion

import (
	"fmt"
	"runtime"
)

// Architecture identifies a CPU architecture a specialization can target.
// The set is closed; target specifications naming anything else fail to
// parse. The declaration order is the canonical order used for printing.
type Architecture int

const (
	ArchX86 Architecture = iota
	ArchX86_64
	ArchArm
	ArchAarch64
	ArchMips
	ArchMips64
	ArchPowerPC
	ArchPowerPC64
)

// archNames is indexed by Architecture.
var archNames = [...]string{
	"x86",
	"x86_64",
	"arm",
	"aarch64",
	"mips",
	"mips64",
	"powerpc",
	"powerpc64",
}

// String returns the canonical architecture name as it appears in target
// specifications.
func (a Architecture) String() string {
	if a < 0 || int(a) >= len(archNames) {
		return "unknown"
	}
	return archNames[a]
}

// ParseArchitecture maps a canonical architecture name to its Architecture
// value. Unknown names report ErrMalformedSpec.
func ParseArchitecture(name string) (Architecture, error) {
	for i, n := range archNames {
		if n == name {
			return Architecture(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown architecture %q", ErrMalformedSpec, name)
}

// HostArchitecture reports the Architecture this binary was compiled for.
// ok is false when GOARCH falls outside the closed enumeration (riscv64,
// s390x, wasm, ...); on such hosts no specialization ever matches and
// selection always falls through to the default implementation.
func HostArchitecture() (arch Architecture, ok bool) {
	switch runtime.GOARCH {
	case "386":
		return ArchX86, true
	case "amd64":
		return ArchX86_64, true
	case "arm":
		return ArchArm, true
	case "arm64":
		return ArchAarch64, true
	case "mips", "mipsle":
		return ArchMips, true
	case "mips64", "mips64le":
		return ArchMips64, true
	case "ppc64", "ppc64le":
		return ArchPowerPC64, true
	default:
		return 0, false
	}
}
