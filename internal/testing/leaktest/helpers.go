// Package leaktest holds test helpers for goroutine and heap growth checks.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleInterval = 5 * time.Millisecond
	defaultSettle  = 500 * time.Millisecond
	bytesPerMB     = 1024 * 1024
)

// GoroutineChecker records the goroutine count at construction and later
// reports goroutines that are still alive.
type GoroutineChecker struct {
	t      testing.TB
	before int
	settle time.Duration
}

// NewGoroutineChecker records the current goroutine count.
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	return &GoroutineChecker{t: t, before: runtime.NumGoroutine(), settle: defaultSettle}
}

// WithSettle changes how long Check waits for goroutines to exit.
func (g *GoroutineChecker) WithSettle(d time.Duration) *GoroutineChecker {
	g.settle = d
	return g
}

// Check polls until at most tolerance extra goroutines remain, failing the test
// once the settle window has elapsed.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	after := settleGoroutines(g.before+tolerance, g.settle)
	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("goroutine leak: before=%d after=%d leaked=%d tolerance=%d",
			g.before, after, leaked, tolerance)
	}
}

// MemoryChecker compares live heap before and after a workload.
type MemoryChecker struct {
	t      testing.TB
	before uint64
}

// NewMemoryChecker records the live heap after a collection.
func NewMemoryChecker(t testing.TB) *MemoryChecker {
	t.Helper()
	return &MemoryChecker{t: t, before: liveHeap()}
}

// Check fails when the live heap grew by more than maxGrowthMB.
func (m *MemoryChecker) Check(maxGrowthMB float64) {
	m.t.Helper()

	after := liveHeap()
	growth := (float64(after) - float64(m.before)) / bytesPerMB
	if growth > maxGrowthMB {
		m.t.Errorf("heap growth: before=%.2fMB after=%.2fMB growth=%.2fMB max=%.2fMB",
			float64(m.before)/bytesPerMB, float64(after)/bytesPerMB, growth, maxGrowthMB)
	}
}

// CheckNoGoroutineLeak runs fn and fails if it leaves goroutines behind.
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()
	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// CheckNoMemoryLeak runs fn and fails if the live heap grows beyond maxGrowthMB.
func CheckNoMemoryLeak(t testing.TB, maxGrowthMB float64, fn func()) {
	t.Helper()
	checker := NewMemoryChecker(t)
	fn()
	checker.Check(maxGrowthMB)
}

func settleGoroutines(target int, window time.Duration) int {
	deadline := time.Now().Add(window)
	for {
		runtime.Gosched()
		n := runtime.NumGoroutine()
		if n <= target || time.Now().After(deadline) {
			return n
		}
		time.Sleep(settleInterval)
	}
}

func liveHeap() uint64 {
	runtime.GC()
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.HeapAlloc
}
