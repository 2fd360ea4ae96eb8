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

// Package multiversion selects, at runtime, the best implementation of an
// operation for the CPU the process is running on.
//
// Callers register several interchangeable implementations of the same
// function, each tagged with a target specification naming the architectures
// and instruction-set features it requires, plus one default implementation
// that works everywhere. The package picks the first viable entry in
// declaration order and hands back the chosen function.
//
// A target specification is an architecture part optionally followed by
// '+'-separated feature names:
//
//	"x86_64+avx2+fma"
//	"[arm|aarch64]+neon"
//	"aarch64"
//
// Bracketed architecture lists accept any of the named architectures.
// Feature names are sorted and deduplicated, so two specifications that
// differ only in feature order are the same specification.
//
// Dispatch comes in two shapes. Cached dispatch resolves the winning
// implementation once, stores it in a single atomic slot, and serves every
// later call with one relaxed atomic load:
//
//	var dot = multiversion.NewCached(multiversion.NewTable[func([]float32, []float32) float32]().
//		On("x86_64+avx2+fma", dotAVX2).
//		On("[arm|aarch64]+neon", dotNEON).
//		Default(dotGeneric).
//		MustBuild())
//
//	sum := dot.Func()(a, b)
//
// Chain dispatch re-evaluates the table on every call. It exists for call
// shapes that cannot share one cached function value, most importantly
// generic functions, where Targets yields the index of the winning branch
// and the caller forwards its own type parameters:
//
//	var dotTargets = multiversion.MustTargets("x86_64+avx2+fma", "[arm|aarch64]+neon")
//
//	func Dot[T Float](a, b []T) T {
//		switch dotTargets.Select() {
//		case 0:
//			return dotAVX2[T](a, b)
//		case 1:
//			return dotNEON[T](a, b)
//		default:
//			return dotGeneric[T](a, b)
//		}
//	}
//
// Feature probing is adaptive by default, reading live CPU capabilities.
// Building with the "multiversion_static" build tag switches the whole
// binary to static detection, which trusts only features the Go toolchain
// guarantees unconditionally (GOARCH baselines and the GOAMD64/GO386/GOPPC64
// microarchitecture levels). Setting the MULTIVERSION_NO_DISPATCH
// environment variable disables adaptive probing entirely, so every call
// falls through to the default implementation.
package multiversion
