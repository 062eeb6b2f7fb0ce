package when

// getHandler classifies x per spec §4.2. A trusted promise (our own
// concrete *Promise type — nominal, not structural, per the Design Notes)
// is wrapped in a Following handler. Anything satisfying Thenable is
// treated as an untrusted foreign thenable and assimilated asynchronously.
// Everything else is a plain fulfillment value.
//
// The JS original also has a branch for "accessing .then threw" (property
// reads can fail on an arbitrary object). Go's static interface assertion
// can't throw on an attempted read the way a property getter can, so that
// branch has no Go analogue here — it collapses into the panic-recovery
// already performed around the deferred call to Thenable.Then in
// adoptThenable.
func getHandler(f *Factory, x any) handler {
	if p, ok := x.(*Promise); ok {
		return newFollowingHandler(p)
	}
	if t, ok := x.(Thenable); ok {
		return adoptThenable(f, t)
	}
	return newFulfilledHandler(f, x)
}

// adoptThenable defers the call to t.Then until the next turn, per spec
// §4.2: this is required for safety against a misbehaving thenable that
// might call both callbacks, call one synchronously, or throw. The
// adopting promise's own pendingHandler.join is idempotent after the first
// transition, so a thenable that calls resolve twice (or resolve then
// reject) only has its first call observed.
func adoptThenable(f *Factory, t Thenable) handler {
	adopting := f.newPendingPromise()

	f.env.Enqueue(func() {
		_, threw, reason := protect(func() any {
			t.Then(adopting.resolve, adopting.reject, adopting.notifyUpdate)
			return nil
		})
		if threw {
			adopting.reject(reason)
		}
	})

	return newFollowingHandler(adopting)
}
