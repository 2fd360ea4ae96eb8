package multiversion

import (
	"sync"
	"testing"

	"code.hybscloud.com/atomix"
)

// countingDetector wraps a Detector and counts Detected calls with
// feature-bearing sets.
type countingDetector struct {
	inner Detector
	calls atomix.Int64
}

func (d *countingDetector) Detected(arch Architecture, features []string) bool {
	if len(features) > 0 {
		d.calls.Add(1)
	}
	return d.inner.Detected(arch, features)
}

func newCachedForTest(det Detector) *Cached[string] {
	return NewCached(NewTable[string]().
		On("x86_64+avx2", "avx2").
		On("x86_64+sse4.2", "sse42").
		Default("generic").
		Architecture(ArchX86_64).
		Detector(det).
		MustBuild())
}

func TestCachedResolveOnce(t *testing.T) {
	det := &countingDetector{inner: featureSet("sse4.2")}
	c := newCachedForTest(det)

	if c.Resolved() {
		t.Fatal("Resolved before first call: got true")
	}
	if got := c.Func(); got != "sse42" {
		t.Fatalf("first call: got %q, want %q", got, "sse42")
	}
	if !c.Resolved() {
		t.Fatal("Resolved after first call: got false")
	}

	after := det.calls.Load()
	for i := 0; i < 1000; i++ {
		if got := c.Func(); got != "sse42" {
			t.Fatalf("call %d: got %q, want %q", i, got, "sse42")
		}
	}
	if got := det.calls.Load(); got != after {
		t.Errorf("detector re-invoked after resolution: %d calls, want %d", got, after)
	}
}

func TestCachedDefaultResolution(t *testing.T) {
	det := &countingDetector{inner: featureSet()}
	c := newCachedForTest(det)

	if got := c.Func(); got != "generic" {
		t.Fatalf("first call: got %q, want %q", got, "generic")
	}
	after := det.calls.Load()
	if got := c.Func(); got != "generic" {
		t.Fatalf("second call: got %q, want %q", got, "generic")
	}
	if got := det.calls.Load(); got != after {
		t.Errorf("detector re-invoked for cached default: %d calls, want %d", got, after)
	}
}

func TestCachedConcurrentFirstCall(t *testing.T) {
	const (
		goroutines = 32
		iterations = 500
	)

	det := &countingDetector{inner: featureSet("avx2", "sse4.2")}
	c := newCachedForTest(det)

	var wrong atomix.Int64
	start := make(chan struct{})
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			for i := 0; i < iterations; i++ {
				if c.Func() != "avx2" {
					wrong.Add(1)
				}
			}
		}()
	}
	close(start)
	wg.Wait()

	if got := wrong.Load(); got != 0 {
		t.Errorf("%d calls observed a non-winning implementation", got)
	}
	// Racing first calls may each resolve, but never more than one
	// detector pass per goroutine.
	if got := det.calls.Load(); got > goroutines {
		t.Errorf("detector calls: got %d, want <= %d", got, goroutines)
	}
	if !c.Resolved() {
		t.Error("Resolved after stress: got false")
	}

	// Steady state: no further detection at all.
	before := det.calls.Load()
	for i := 0; i < 100; i++ {
		c.Func()
	}
	if got := det.calls.Load(); got != before {
		t.Errorf("detector invoked after steady state: %d calls, want %d", got, before)
	}
}

func TestCachedFunctionImplementations(t *testing.T) {
	// The production call shape: implementations are functions and the
	// caller invokes whatever Func resolves.
	c := NewCached(NewTable[func(int) int]().
		On("x86_64+avx2", func(x int) int { return x * 2 }).
		Default(func(x int) int { return x + 1 }).
		Architecture(ArchX86_64).
		Detector(featureSet("avx2")).
		MustBuild())

	if got := c.Func()(21); got != 42 {
		t.Fatalf("first call: got %d, want 42", got)
	}
	if !c.Resolved() {
		t.Fatal("Resolved after first call: got false")
	}
	if got := c.Func()(10); got != 20 {
		t.Errorf("cached call: got %d, want 20", got)
	}
}

func TestCachedSeparateCallSites(t *testing.T) {
	// Two call sites over equal tables own separate slots.
	detA := &countingDetector{inner: featureSet("avx2")}
	detB := &countingDetector{inner: featureSet("sse4.2")}
	a := newCachedForTest(detA)
	b := newCachedForTest(detB)

	if got := a.Func(); got != "avx2" {
		t.Errorf("site a: got %q, want %q", got, "avx2")
	}
	if got := b.Func(); got != "sse42" {
		t.Errorf("site b: got %q, want %q", got, "sse42")
	}
}
