package when

import (
	"fmt"
	"time"
)

// SelfResolutionError is the reason a promise is rejected with when its own
// resolver attempts to resolve it with itself.
type SelfResolutionError struct{}

func newSelfResolutionError() *SelfResolutionError {
	return &SelfResolutionError{}
}

func (*SelfResolutionError) Error() string {
	return "when: a promise cannot be resolved with itself"
}

// TimeoutError is the reason a Timeout-derived promise is rejected with when
// its timer fires before the upstream promise settles.
type TimeoutError struct {
	Bound time.Duration
}

func newTimeoutError(bound time.Duration) *TimeoutError {
	return &TimeoutError{Bound: bound}
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("when: timeout after %dms", e.Bound.Milliseconds())
}

// FilterRejection is the reason produced by Filter when the predicate
// rejects a value.
type FilterRejection struct {
	Value any
}

func (e *FilterRejection) Error() string {
	return fmt.Sprintf("when: value %v rejected by filter predicate", e.Value)
}
