package multiversion

// SelectIndex runs the matching algorithm against the live CPU and returns
// the index of the winning specialization, or -1 for the default.
//
// Entries are tried in declaration order and the first viable one wins; no
// specificity ranking is performed, so a broader entry declared earlier
// beats a narrower one declared later. A feature-bearing entry is viable
// when the architecture is in its set and the detector reports every
// feature. A featureless entry is viable on architecture membership alone:
// it is an architecture-local default and shadows the global default from
// its list position.
//
// SelectIndex is a pure function of the table's architecture and detector.
// For a fixed host it always returns the same index, which is what lets
// Cached resolve racily without a lock.
func (t *Table[F]) SelectIndex() int {
	if !t.archOK {
		return -1
	}
	for i, s := range t.specs {
		if !s.Target.hasArch(t.arch) {
			continue
		}
		if !s.Target.HasFeatures() || t.det.Detected(t.arch, s.Target.features) {
			return i
		}
	}
	return -1
}

// Select returns the winning implementation for the live CPU, falling back
// to the default when nothing matches. Selection is total: it cannot fail.
func (t *Table[F]) Select() F {
	if i := t.SelectIndex(); i >= 0 {
		return t.specs[i].Impl
	}
	return t.def
}
