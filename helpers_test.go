package when

import (
	"testing"
	"time"
)

// newTestFactory returns a Factory backed by a GoroutineEnvironment with a
// no-op logger, along with a teardown func the caller should defer.
func newTestFactory(t *testing.T) (*Factory, func()) {
	t.Helper()
	env := NewGoroutineEnvironment(WithLogger(NewNoOpLogger()))
	return New(env), env.Shutdown
}

// await blocks until p settles or the timeout elapses, returning its final
// Inspection. Tests use this instead of Get() because this package never
// exposes a blocking accessor on Promise itself — settlement is always
// observed asynchronously, exactly as the data model requires.
func await(t *testing.T, p *Promise, timeout time.Duration) Inspection {
	t.Helper()
	done := make(chan Inspection, 1)
	p.Done(func(v any) {
		done <- Inspection{State: StateFulfilled, Value: v}
	}, func(r any) {
		done <- Inspection{State: StateRejected, Reason: r}
	})
	select {
	case ins := <-done:
		return ins
	case <-time.After(timeout):
		t.Fatalf("timed out after %s waiting for promise to settle", timeout)
		return Inspection{}
	}
}
