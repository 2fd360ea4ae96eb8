package cpu

import (
	"runtime"
	"sort"
	"testing"
)

func TestParseToggle(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{val: "", want: false},
		{val: "0", want: false},
		{val: "false", want: false},
		{val: "1", want: true},
		{val: "true", want: true},
		{val: "yes", want: true},
		{val: "anything", want: true},
	}
	for _, tt := range tests {
		if got := parseToggle(tt.val); got != tt.want {
			t.Errorf("parseToggle(%q): got %v, want %v", tt.val, got, tt.want)
		}
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	if !sort.StringsAreSorted(names) {
		t.Errorf("Names not sorted: %v", names)
	}
	seen := map[string]bool{}
	for _, n := range names {
		if seen[n] {
			t.Errorf("duplicate name %q", n)
		}
		seen[n] = true
	}
}

func TestSupported(t *testing.T) {
	if disabled {
		t.Skip("MULTIVERSION_NO_DISPATCH set")
	}

	t.Run("unknown_name", func(t *testing.T) {
		if Supported("definitely-not-a-feature") {
			t.Error("Supported(bogus): got true")
		}
	})

	t.Run("host_baseline", func(t *testing.T) {
		switch runtime.GOARCH {
		case "amd64":
			if !Supported("sse2") {
				t.Error("Supported(sse2): got false on amd64")
			}
		case "arm64":
			if !Supported("neon") {
				t.Error("Supported(neon): got false on arm64")
			}
		default:
			t.Skipf("no baseline assertion for GOARCH %s", runtime.GOARCH)
		}
	})

	t.Run("probe_table_consistent", func(t *testing.T) {
		// Every probe must answer without panicking; the value itself is
		// hardware-dependent.
		for _, name := range Names() {
			_ = Supported(name)
		}
	})
}

func TestCpuidFallbackNormalization(t *testing.T) {
	if runtime.GOARCH != "amd64" {
		t.Skipf("cpuid fallback assertions are amd64-specific")
	}
	if disabled {
		t.Skip("MULTIVERSION_NO_DISPATCH set")
	}
	// "sse4.2" resolves through the x/sys table; the dotted spelling must
	// also resolve through the cpuid fallback path when asked bare.
	if Supported("sse4.2") != cpuidSupported("sse4.2") {
		t.Error("x/sys and cpuid disagree on sse4.2")
	}
}
