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

import "github.com/isgasho/multiversion/internal/cpu"

// Detector answers whether a feature set is usable for a given architecture
// on the running machine.
//
// Detected returns true iff every feature in the set is satisfied. An empty
// feature set is always satisfied. Implementations must be pure with respect
// to a fixed host: repeated calls with the same arguments return the same
// answer for the lifetime of the process. Cached dispatch relies on this to
// make its racy first-use resolution idempotent.
type Detector interface {
	Detected(arch Architecture, features []string) bool
}

// DetectorFunc adapts a plain function to the Detector interface. Used
// mostly in tests to pin feature answers.
type DetectorFunc func(arch Architecture, features []string) bool

// Detected calls f.
func (f DetectorFunc) Detected(arch Architecture, features []string) bool {
	return f(arch, features)
}

// Adaptive returns the Detector that probes the live CPU. Features are
// looked up for the host architecture only; asking about a foreign
// architecture never matches. The MULTIVERSION_NO_DISPATCH environment
// variable, read once at startup, makes every feature probe report false.
func Adaptive() Detector { return adaptiveDetector{} }

type adaptiveDetector struct{}

func (adaptiveDetector) Detected(arch Architecture, features []string) bool {
	if len(features) == 0 {
		return true
	}
	host, ok := HostArchitecture()
	if !ok || host != arch {
		return false
	}
	for _, f := range features {
		if !cpu.Supported(f) {
			return false
		}
	}
	return true
}

// Static returns the Detector that trusts only features the Go toolchain
// guarantees are enabled for every instruction in this binary: GOARCH
// baselines plus the GOAMD64/GO386/GOPPC64 microarchitecture levels the
// binary was built with. No runtime probing occurs.
func Static() Detector { return staticDetector{} }

type staticDetector struct{}

func (staticDetector) Detected(arch Architecture, features []string) bool {
	if len(features) == 0 {
		return true
	}
	host, ok := HostArchitecture()
	if !ok || host != arch {
		return false
	}
	for _, f := range features {
		if !staticFeatures[f] {
			return false
		}
	}
	return true
}
