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
	"slices"
	"strings"
)

// Target is an immutable parsed target specification: a non-empty set of
// acceptable architectures plus the instruction-set features an
// implementation requires. The zero Target is invalid; construct one with
// ParseTarget.
type Target struct {
	// arches keeps the declared order for the bracket display. Duplicates
	// are collapsed in archSet for matching and equality.
	arches  []Architecture
	archSet uint16

	// features is sorted and deduplicated at construction. This canonical
	// form is what equality, printing, and FeatureTag all use.
	features []string
}

// ParseTarget parses a target specification string.
//
// The grammar is ArchPart ['+' Feature]*, where ArchPart is a single
// architecture name ("x86_64") or a bracketed alternative list
// ("[arm|aarch64]"). Feature names are sorted and deduplicated, so input
// order does not matter. All grammar violations report ErrMalformedSpec.
func ParseTarget(s string) (Target, error) {
	segments := strings.Split(s, "+")

	archPart := segments[0]
	if archPart == "" {
		return Target{}, fmt.Errorf("%w: expected architecture specifier in %q", ErrMalformedSpec, s)
	}

	var names []string
	if strings.HasPrefix(archPart, "[") && strings.HasSuffix(archPart, "]") {
		names = strings.Split(archPart[1:len(archPart)-1], "|")
	} else {
		names = []string{archPart}
	}

	t := Target{}
	for _, name := range names {
		arch, err := ParseArchitecture(name)
		if err != nil {
			return Target{}, fmt.Errorf("%w in %q", err, s)
		}
		t.arches = append(t.arches, arch)
		t.archSet |= 1 << arch
	}

	for _, f := range segments[1:] {
		if f == "" {
			return Target{}, fmt.Errorf("%w: empty feature name in %q", ErrMalformedSpec, s)
		}
		t.features = append(t.features, f)
	}
	slices.Sort(t.features)
	t.features = slices.Compact(t.features)

	return t, nil
}

// String returns the canonical form of the specification: a single
// architecture name or a bracketed list in declared order, followed by the
// features in sorted order. Parsing the result yields an equal Target.
func (t Target) String() string {
	var sb strings.Builder
	if len(t.arches) > 1 {
		sb.WriteByte('[')
		for i, a := range t.arches {
			if i > 0 {
				sb.WriteByte('|')
			}
			sb.WriteString(a.String())
		}
		sb.WriteByte(']')
	} else if len(t.arches) == 1 {
		sb.WriteString(t.arches[0].String())
	}
	for _, f := range t.features {
		sb.WriteByte('+')
		sb.WriteString(f)
	}
	return sb.String()
}

// Equal reports whether two Targets accept the same architecture set and
// require the same canonical feature set. Declared architecture order is
// display-only and does not participate.
func (t Target) Equal(o Target) bool {
	return t.archSet == o.archSet && slices.Equal(t.features, o.features)
}

// Architectures returns the declared architectures in input order,
// duplicates included.
func (t Target) Architectures() []Architecture {
	return slices.Clone(t.arches)
}

// Features returns the canonical (sorted, deduplicated) feature set.
func (t Target) Features() []string {
	return slices.Clone(t.features)
}

// HasFeatures reports whether the specification requires any features.
// A featureless Target acts as an architecture-local default during
// selection.
func (t Target) HasFeatures() bool {
	return len(t.features) > 0
}

// FeatureTag returns the canonical features joined with underscores and
// stripped of dots, suitable as a symbol or file-name suffix:
// "x86_64+xsave+sse4.2" yields "sse42_xsave".
func (t Target) FeatureTag() string {
	return strings.ReplaceAll(strings.Join(t.features, "_"), ".", "")
}

// hasArch reports whether arch is in the accepted set.
func (t Target) hasArch(arch Architecture) bool {
	return t.archSet&(1<<arch) != 0
}
