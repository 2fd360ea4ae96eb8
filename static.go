package multiversion

// staticFeatures holds the feature names guaranteed enabled for every
// instruction in this binary by the Go toolchain. Populated at init by the
// build-tagged static_*.go files; empty on architectures without feature
// levels. Feature names use target-specification spelling ("sse4.2").
var staticFeatures = map[string]bool{}

func staticEnable(names ...string) {
	for _, n := range names {
		staticFeatures[n] = true
	}
}
