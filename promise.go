package when

import "sync"

// Promise is an opaque value exposing a single mutable slot: its current
// handler. The slot is written at most twice in its lifetime (pending →
// following is possible, but pending → terminal directly is the common
// case) and is effectively immutable once terminal.
type Promise struct {
	f       *Factory
	mu      sync.Mutex
	handler handler
}

// Factory is the promise constructor bound to a host Environment. All
// promises created through one Factory share its Environment and Logger.
type Factory struct {
	env    Environment
	logger Logger
}

// New binds a Factory to env. If env also implements environmentLogger, its
// Logger is adopted; otherwise diagnostics are discarded.
func New(env Environment) *Factory {
	logger := Logger(NewNoOpLogger())
	if lp, ok := env.(environmentLogger); ok {
		logger = lp.Logger()
	}
	return &Factory{env: env, logger: logger}
}

func (f *Factory) newPendingPromise() *Promise {
	p := &Promise{f: f}
	p.handler = newPendingHandler(p)
	return p
}

// currentHandler reads the handler slot under lock.
func (p *Promise) currentHandler() handler {
	p.mu.Lock()
	h := p.handler
	p.mu.Unlock()
	return h
}

// settle installs next as this promise's handler, provided the slot still
// holds the pendingHandler it was created with. join's side effect — queue
// drain — only fires for that case; every other handler's join is a no-op
// that returns itself, so a second settlement attempt silently does
// nothing (spec §3's "effectively immutable once terminal").
func (p *Promise) settle(next handler) {
	p.mu.Lock()
	cur, ok := p.handler.(*pendingHandler)
	if !ok {
		p.mu.Unlock()
		return
	}
	installed := cur.join(next)
	p.handler = installed
	drained := cur.drained
	p.mu.Unlock()

	for _, c := range drained {
		installed.traverse().when(c.resolve, c.reject, c.notify, c.onF, c.onR, c.onP)
	}
}

// resolve is the resolver's resolve callback: x becomes this promise's
// outcome via getHandler's trusted/thenable/plain-value classification,
// except that resolving a promise with itself is converted to a rejection
// (spec §4.2).
func (p *Promise) resolve(x any) {
	if pr, ok := x.(*Promise); ok && pr == p {
		p.settle(newRejectedHandler(p.f, newSelfResolutionError()))
		return
	}
	p.settle(getHandler(p.f, x))
}

// reject is the resolver's reject callback.
func (p *Promise) reject(reason any) {
	p.settle(newRejectedHandler(p.f, reason))
}

// notifyUpdate is the resolver's notify callback.
func (p *Promise) notifyUpdate(update any) {
	p.currentHandler().notify(update)
}

// Resolver is the function a caller supplies to New's Promise constructor;
// it drives the new promise to settlement via the three callbacks it's
// handed.
type Resolver func(resolve func(any), reject func(any), notify func(any))

// Promise runs resolver synchronously against a freshly pending promise. A
// panic inside resolver rejects the promise with the recovered value,
// mirroring a thrown exception in the source material.
func (f *Factory) Promise(resolver Resolver) *Promise {
	p := f.newPendingPromise()
	_, threw, reason := protect(func() any {
		resolver(p.resolve, p.reject, p.notifyUpdate)
		return nil
	})
	if threw {
		p.reject(reason)
	}
	return p
}

// Then registers onF/onR/onP against this promise's current handler and
// returns a new promise following their eventual outcome. Any of the three
// may be nil, in which case the corresponding value/reason/update passes
// through unchanged.
func (p *Promise) Then(onF fulfillFunc, onR rejectHandlerFunc, onP progressFunc) *Promise {
	next := p.f.newPendingPromise()
	p.currentHandler().when(next.resolve, next.reject, next.notifyUpdate, onF, onR, onP)
	return next
}

// Inspect returns a state snapshot: {pending}, {fulfilled, value} or
// {rejected, reason}. A Following handler's inspection delegates to its
// target, so this always reports the traversed terminal (or pending)
// state, never "following" itself.
func (p *Promise) Inspect() Inspection {
	return p.currentHandler().inspect()
}

// Done is the fatal-commit operation: onF receives the fulfillment value and
// onR the rejection reason. A rejection that reaches it with no onR is
// logged to the Factory's Logger and then panics, an uncatchable host-level
// crash rather than an ordinary rejection; so does a panic from onF or onR.
// Unlike
// Then, the raw resolve/reject callbacks handed to the handler ARE onF/onR
// themselves, so the protect() wrapping that Fulfilled/Rejected.when apply
// only around the *transformer* argument never runs for them — a panic
// here genuinely propagates out of the environment's drain goroutine.
func (p *Promise) Done(onF func(value any), onR func(reason any)) {
	resolve := func(value any) {
		if onF != nil {
			onF(value)
		}
	}
	reject := func(reason any) {
		if onR != nil {
			onR(reason)
			return
		}
		p.f.logger.Log("fatal_commit_unhandled_rejection", map[string]any{"reason": reason})
		panic(reason)
	}
	p.currentHandler().when(resolve, reject, nil, nil, nil, nil)
}

// Catch is Then(nil, onR, nil).
func (p *Promise) Catch(onR rejectHandlerFunc) *Promise {
	return p.Then(nil, onR, nil)
}

// Else substitutes v for any rejection, equivalent to Catch(() => v).
func (p *Promise) Else(v any) *Promise {
	return p.Catch(func(any) any { return v })
}

// Yield discards the fulfillment value and substitutes v, equivalent to
// Then(() => v).
func (p *Promise) Yield(v any) *Promise {
	return p.Then(func(any) any { return v }, nil, nil)
}

// Throw discards the fulfillment value and rejects with reason, equivalent
// to Then(() => { throw reason }).
func (p *Promise) Throw(reason any) *Promise {
	return p.Then(func(any) any { panic(reason) }, nil, nil)
}

// Finally runs fn on both the fulfillment and rejection branch, for side
// effects only: its return value is discarded and the original outcome
// passes through, unless fn itself panics, in which case that becomes the
// new rejection reason.
func (p *Promise) Finally(fn func()) *Promise {
	next := p.f.newPendingPromise()
	onF := func(v any) any {
		fn()
		return v
	}
	onR := func(r any) any {
		fn()
		panic(r)
	}
	p.currentHandler().when(next.resolve, next.reject, next.notifyUpdate, onF, onR, nil)
	return next
}

// Tap runs fn for its side effect on fulfillment and yields the original
// value regardless of what fn returns, equivalent to Then(fn).Yield(self).
func (p *Promise) Tap(fn func(value any)) *Promise {
	return p.Then(func(v any) any {
		fn(v)
		return v
	}, nil, nil)
}

// Progress is Then(nil, nil, fn). Progress is not part of modern promise
// standards; it is carried here for fidelity with the source material and
// should be treated as deprecated surface.
func (p *Promise) Progress(onP progressFunc) *Promise {
	return p.Then(nil, nil, onP)
}

// Spread treats a fulfillment value of iterable promises-or-values as the
// argument list to fn: it awaits every element via All and calls fn with
// them expanded.
func (p *Promise) Spread(fn func(values []any) any) *Promise {
	return p.Then(func(v any) any {
		items, ok := v.([]any)
		if !ok {
			panic(&FilterRejection{Value: v})
		}
		return p.f.All(items).Then(func(resolved any) any {
			return fn(resolved.([]any))
		}, nil, nil)
	}, nil, nil)
}
