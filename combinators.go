package when

import "sync"

// Cast returns x unchanged if it is already a trusted promise; otherwise it
// is equivalent to Resolve(x).
func (f *Factory) Cast(x any) *Promise {
	if p, ok := x.(*Promise); ok {
		return p
	}
	return f.Resolve(x)
}

// Resolve always constructs a new trusted promise following x, even if x is
// itself already a trusted promise.
func (f *Factory) Resolve(x any) *Promise {
	p := f.newPendingPromise()
	p.resolve(x)
	return p
}

// Reject constructs a promise already rejected with reason.
func (f *Factory) Reject(reason any) *Promise {
	p := f.newPendingPromise()
	p.reject(reason)
	return p
}

// Of is an alias for Resolve, named for parity with the source material.
func (f *Factory) Of(v any) *Promise {
	return f.Resolve(v)
}

// Empty returns a promise that is observably pending forever.
func (f *Factory) Empty() *Promise {
	return &Promise{f: f, handler: newEmptyHandler()}
}

// All resolves to a slice of fulfillment values in input order once every
// element of xs (cast via Cast) has fulfilled. The first rejection rejects
// the result with that reason; later settlements of other elements are
// discarded (the result promise is already terminal by then, so their
// resolve/reject calls are no-ops). An empty xs resolves to an empty slice.
func (f *Factory) All(xs []any) *Promise {
	result := f.newPendingPromise()
	n := len(xs)
	if n == 0 {
		result.resolve([]any{})
		return result
	}

	values := make([]any, n)
	var mu sync.Mutex
	remaining := n

	for i, x := range xs {
		i := i
		f.Cast(x).Then(func(v any) any {
			mu.Lock()
			values[i] = v
			remaining--
			done := remaining == 0
			mu.Unlock()
			if done {
				result.resolve(values)
			}
			return nil
		}, func(r any) any {
			result.reject(r)
			return nil
		}, nil)
	}
	return result
}

// Any resolves to the first fulfillment value among xs. If every element
// rejects, the result rejects with a slice of all reasons in the order
// rejections arrived. An empty xs resolves to nil.
func (f *Factory) Any(xs []any) *Promise {
	result := f.newPendingPromise()
	n := len(xs)
	if n == 0 {
		result.resolve(nil)
		return result
	}

	reasons := make([]any, 0, n)
	var mu sync.Mutex
	remaining := n

	for _, x := range xs {
		f.Cast(x).Then(func(v any) any {
			result.resolve(v)
			return nil
		}, func(r any) any {
			mu.Lock()
			reasons = append(reasons, r)
			remaining--
			done := remaining == 0
			out := append([]any(nil), reasons...)
			mu.Unlock()
			if done {
				result.reject(out)
			}
			return nil
		}, nil)
	}
	return result
}

// Some resolves with a slice of the first n fulfillment values, in the
// order they fulfilled. If enough elements reject that n successes become
// impossible, it rejects with the reasons collected so far. n is clamped to
// len(xs) before iteration starts, per the clamp-up-front resolution of the
// ordering ambiguity around already-settled inputs (see DESIGN.md).
func (f *Factory) Some(xs []any, n int) *Promise {
	result := f.newPendingPromise()
	total := len(xs)
	if n > total {
		n = total
	}
	if n <= 0 {
		result.resolve([]any{})
		return result
	}

	maxFailures := total - n
	values := make([]any, 0, n)
	reasons := make([]any, 0, total)
	var mu sync.Mutex
	done := false

	for _, x := range xs {
		f.Cast(x).Then(func(v any) any {
			mu.Lock()
			if done {
				mu.Unlock()
				return nil
			}
			values = append(values, v)
			if len(values) == n {
				done = true
				out := append([]any(nil), values...)
				mu.Unlock()
				result.resolve(out)
				return nil
			}
			mu.Unlock()
			return nil
		}, func(r any) any {
			mu.Lock()
			if done {
				mu.Unlock()
				return nil
			}
			reasons = append(reasons, r)
			if len(reasons) > maxFailures {
				done = true
				out := append([]any(nil), reasons...)
				mu.Unlock()
				result.reject(out)
				return nil
			}
			mu.Unlock()
			return nil
		}, nil)
	}
	return result
}

// Race adopts the first settlement, fulfillment or rejection, among xs. An
// empty xs produces a forever-pending promise: no element ever settles it.
func (f *Factory) Race(xs []any) *Promise {
	result := f.newPendingPromise()
	for _, x := range xs {
		f.Cast(x).Then(func(v any) any {
			result.resolve(v)
			return nil
		}, func(r any) any {
			result.reject(r)
			return nil
		}, nil)
	}
	return result
}

// Settle resolves to a slice of Inspection snapshots in input order, one
// per element of xs; it never rejects.
func (f *Factory) Settle(xs []any) *Promise {
	result := f.newPendingPromise()
	n := len(xs)
	if n == 0 {
		result.resolve([]Inspection{})
		return result
	}

	snapshots := make([]Inspection, n)
	var mu sync.Mutex
	remaining := n

	record := func(i int, snap Inspection) {
		mu.Lock()
		snapshots[i] = snap
		remaining--
		done := remaining == 0
		mu.Unlock()
		if done {
			result.resolve(snapshots)
		}
	}

	for i, x := range xs {
		i := i
		f.Cast(x).Then(func(v any) any {
			record(i, Inspection{State: StateFulfilled, Value: v})
			return nil
		}, func(r any) any {
			record(i, Inspection{State: StateRejected, Reason: r})
			return nil
		}, nil)
	}
	return result
}
