//go:build ppc64 || ppc64le

package multiversion

import "testing"

func TestStaticFeaturesPOWER(t *testing.T) {
	// GOPPC64 is at least power8 on both ppc64 and ppc64le, so the POWER8
	// baseline set must be registered on any POWER build regardless of
	// endianness.
	for _, f := range []string{"altivec", "vsx", "power8"} {
		if !staticFeatures[f] {
			t.Errorf("staticFeatures[%q]: got false, want true on POWER", f)
		}
	}
	if !Static().Detected(ArchPowerPC64, []string{"altivec", "vsx", "power8"}) {
		t.Error("Static().Detected(powerpc64, power8 baseline): got false")
	}
}
