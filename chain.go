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

// Chain is the fallback dispatcher: it walks the table's guards on every
// call instead of caching an address. Use it when a call site cannot be
// represented by one stored function value, or when per-call re-evaluation
// is explicitly wanted. Selection stays deterministic for a fixed host, so
// every call picks the same branch; only the cost model differs from
// Cached, one detector evaluation per call rather than per process.
type Chain[F any] struct {
	table *Table[F]
}

// NewChain wraps a built table in a per-call dispatcher.
func NewChain[F any](t *Table[F]) *Chain[F] {
	return &Chain[F]{table: t}
}

// Func selects the implementation for the running CPU. Every call
// re-evaluates the table.
func (c *Chain[F]) Func() F {
	return c.table.Select()
}

// Table returns the dispatch table behind this call site.
func (c *Chain[F]) Table() *Table[F] {
	return c.table
}

// Targets is the branch-chain form for call shapes that cannot share a
// function value at all, above all generic functions: a generic
// implementation has no single concrete value to store, so the caller keeps
// an index-returning Targets beside its own switch and forwards its type
// parameters into the winning branch. The switch preserves the call's exact
// signature, type parameters, and return type, since nothing is cached:
//
//	var sumTargets = multiversion.MustTargets("x86_64+avx2", "[arm|aarch64]+neon")
//
//	func Sum[T Number](xs []T) T {
//		switch sumTargets.Select() {
//		case 0:
//			return sumAVX2[T](xs)
//		case 1:
//			return sumNEON[T](xs)
//		default:
//			return sumGeneric[T](xs)
//		}
//	}
type Targets struct {
	specs []Target

	arch   Architecture
	archOK bool
	det    Detector
}

// NewTargets parses an ordered list of target specifications. Declaration
// order is priority order, mirroring Table.
func NewTargets(specs ...string) (*Targets, error) {
	t := &Targets{}
	for _, s := range specs {
		target, err := ParseTarget(s)
		if err != nil {
			return nil, err
		}
		t.specs = append(t.specs, target)
	}
	t.arch, t.archOK = HostArchitecture()
	t.det = DefaultDetector()
	return t, nil
}

// MustTargets is NewTargets for package-level variables; it panics on a
// malformed specification.
func MustTargets(specs ...string) *Targets {
	t, err := NewTargets(specs...)
	if err != nil {
		panic(err)
	}
	return t
}

// Detector overrides the feature detector. Intended for tests; call before
// first use, not concurrently with Select.
func (t *Targets) Detector(d Detector) *Targets {
	t.det = d
	return t
}

// Architecture overrides the architecture selected for. Intended for tests.
func (t *Targets) Architecture(arch Architecture) *Targets {
	t.arch = arch
	t.archOK = true
	return t
}

// Select returns the index of the first viable specification, or -1 when
// the caller should take its default branch. The matching rules are those
// of Table.SelectIndex; every call re-evaluates.
func (t *Targets) Select() int {
	if !t.archOK {
		return -1
	}
	for i, target := range t.specs {
		if !target.hasArch(t.arch) {
			continue
		}
		if !target.HasFeatures() || t.det.Detected(t.arch, target.features) {
			return i
		}
	}
	return -1
}

// Len returns the number of specifications.
func (t *Targets) Len() int {
	return len(t.specs)
}

// Target returns the i-th parsed specification.
func (t *Targets) Target(i int) Target {
	return t.specs[i]
}
