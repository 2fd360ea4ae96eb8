// Package cpu answers whether a named instruction-set feature is usable on
// the running processor.
//
// Feature names use the spelling that appears in target specifications
// ("sse4.2", "avx2", "neon"). The primary source is golang.org/x/sys/cpu,
// read through the per-architecture probe tables in probe_*.go; names those
// tables do not carry fall back to a github.com/klauspost/cpuid/v2 lookup.
// Architectures with no probe table and no cpuid support never report any
// feature, so dispatch there always falls through to the default
// implementation.
package cpu

import (
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/klauspost/cpuid/v2"
)

// disabled is latched once at startup from MULTIVERSION_NO_DISPATCH. When
// set, every probe reports false and dispatch collapses to defaults.
var disabled = parseToggle(os.Getenv("MULTIVERSION_NO_DISPATCH"))

// parseToggle interprets an environment toggle: empty is off, a parseable
// bool is itself, any other non-empty value is on.
func parseToggle(val string) bool {
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// Disabled reports whether adaptive dispatch was switched off via
// MULTIVERSION_NO_DISPATCH.
func Disabled() bool {
	return disabled
}

// Supported reports whether the named feature is usable on the running CPU.
func Supported(name string) bool {
	if disabled {
		return false
	}
	if probe, ok := hostFeatures[name]; ok {
		return probe()
	}
	return cpuidSupported(name)
}

// cpuidAliases maps target-specification names to the spelling cpuid uses.
var cpuidAliases = map[string]string{
	"neon": "asimd",
}

// cpuidSupported is the secondary probe for names outside the x/sys tables,
// e.g. "xsave", "lzcnt", or "sha" on x86.
func cpuidSupported(name string) bool {
	if alias, ok := cpuidAliases[name]; ok {
		name = alias
	}
	id := cpuid.ParseFeature(strings.ToUpper(strings.ReplaceAll(name, ".", "")))
	if id == cpuid.UNKNOWN {
		return false
	}
	return cpuid.CPU.Supports(id)
}

// Names returns the feature names the host probe table knows, sorted.
func Names() []string {
	names := make([]string, 0, len(hostFeatures))
	for n := range hostFeatures {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
