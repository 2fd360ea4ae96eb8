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

// Specialization pairs a parsed target specification with the
// implementation to run when it matches.
type Specialization[F any] struct {
	Target Target
	Impl   F
}

// Table is an immutable, priority-ordered dispatch table for one call site:
// specializations in declaration order plus exactly one default
// implementation. Build one with NewTable, then wrap it in a Cached or
// Chain dispatcher (or call Select directly).
type Table[F any] struct {
	specs []Specialization[F]
	def   F

	arch   Architecture
	archOK bool
	det    Detector
}

// Specializations returns the table entries in declaration order.
func (t *Table[F]) Specializations() []Specialization[F] {
	out := make([]Specialization[F], len(t.specs))
	copy(out, t.specs)
	return out
}

// Default returns the table's default implementation.
func (t *Table[F]) Default() F {
	return t.def
}

// impl returns the implementation for a flat index in [0, len(specs)],
// where len(specs) denotes the default.
func (t *Table[F]) impl(i int) F {
	if i >= 0 && i < len(t.specs) {
		return t.specs[i].Impl
	}
	return t.def
}

// Builder assembles a Table. Methods chain; errors accumulate and surface
// from Build, so construction reads as one expression:
//
//	t, err := multiversion.NewTable[func() string]().
//		On("x86_64+avx2", implAVX2).
//		On("[arm|aarch64]+neon", implNEON).
//		Default(implGeneric).
//		Build()
type Builder[F any] struct {
	specs      []Specialization[F]
	def        F
	hasDefault bool

	det     Detector
	arch    Architecture
	archOK  bool
	archSet bool

	err error
}

// NewTable creates a Builder for a dispatch table over implementations of
// type F.
func NewTable[F any]() *Builder[F] {
	return &Builder[F]{}
}

// On appends a specialization. spec follows the target-specification
// grammar; a malformed spec is recorded and reported by Build. Declaration
// order is priority order: the first viable entry wins.
func (b *Builder[F]) On(spec string, impl F) *Builder[F] {
	target, err := ParseTarget(spec)
	if err != nil {
		if b.err == nil {
			b.err = err
		}
		return b
	}
	b.specs = append(b.specs, Specialization[F]{Target: target, Impl: impl})
	return b
}

// Target appends a specialization from an already parsed Target.
func (b *Builder[F]) Target(target Target, impl F) *Builder[F] {
	b.specs = append(b.specs, Specialization[F]{Target: target, Impl: impl})
	return b
}

// Default sets the implementation used when no specialization matches.
// Exactly one default is required; Build fails without it.
func (b *Builder[F]) Default(impl F) *Builder[F] {
	b.def = impl
	b.hasDefault = true
	return b
}

// Detector overrides the feature detector, replacing DefaultDetector().
// Intended for tests that pin feature answers.
func (b *Builder[F]) Detector(d Detector) *Builder[F] {
	b.det = d
	return b
}

// Architecture overrides the architecture the table selects for, replacing
// the host architecture. Intended for tests.
func (b *Builder[F]) Architecture(arch Architecture) *Builder[F] {
	b.arch = arch
	b.archOK = true
	b.archSet = true
	return b
}

// Build finalizes the table. It fails with ErrMalformedSpec if any On spec
// was malformed and with ErrMissingDefault if Default was never called.
func (b *Builder[F]) Build() (*Table[F], error) {
	if b.err != nil {
		return nil, b.err
	}
	if !b.hasDefault {
		return nil, ErrMissingDefault
	}
	t := &Table[F]{
		specs: b.specs,
		def:   b.def,
		det:   b.det,
		arch:  b.arch,
	}
	t.archOK = b.archOK
	if !b.archSet {
		t.arch, t.archOK = HostArchitecture()
	}
	if t.det == nil {
		t.det = DefaultDetector()
	}
	// Builder state is absorbed by the table; prevent reuse from aliasing.
	b.specs = nil
	return t, nil
}

// MustBuild is Build for package-level table variables; it panics on error.
func (b *Builder[F]) MustBuild() *Table[F] {
	t, err := b.Build()
	if err != nil {
		panic(err)
	}
	return t
}
