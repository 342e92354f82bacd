// Package leaktest detects goroutines left running by background workers
// such as the rate limiter's cleanup loop.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleTimeout  = time.Second
	settleInterval = 10 * time.Millisecond
)

// GoroutineChecker compares the goroutine count against a baseline
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker records the current goroutine count as the baseline
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()

	runtime.Gosched()
	return &GoroutineChecker{
		before: runtime.NumGoroutine(),
		t:      t,
	}
}

// Check waits up to a second for the count to drop back to within tolerance
// of the baseline and fails the test with a full stack dump otherwise.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	after, ok := waitForCount(g.before+tolerance, settleTimeout)
	if ok {
		return
	}

	buf := make([]byte, 1<<16)
	n := runtime.Stack(buf, true)
	g.t.Errorf("goroutine leak: before=%d after=%d tolerance=%d\n%s",
		g.before, after, tolerance, buf[:n])
}

// CheckNoGoroutineLeak runs fn and fails t if it leaves goroutines behind
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

func waitForCount(limit int, timeout time.Duration) (int, bool) {
	deadline := time.Now().Add(timeout)
	for {
		count := runtime.NumGoroutine()
		if count <= limit {
			return count, true
		}
		if time.Now().After(deadline) {
			return count, false
		}
		time.Sleep(settleInterval)
	}
}
