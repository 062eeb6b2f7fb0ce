package when

// UnspoolFunc produces the next item/seed pair from the current seed, for
// use with Unfold.
type UnspoolFunc func(seed any) (item any, next any)

// StopFunc tests a seed for termination. Its result is cast via Cast, so it
// may itself return a promise of a boolean (or any truthy/falsy value).
type StopFunc func(seed any) any

// ItemHandler is awaited once per emitted item in Unfold/Iterate, for its
// side effect; its return value is discarded.
type ItemHandler func(item any) any

// Unfold repeatedly tests stop(seed); once truthy it resolves to seed.
// Otherwise unspool(seed) produces the next item and seed, handler(item) is
// awaited, and Unfold recurses on the next seed. Each recursive step
// crosses a Then registration (and so an Enqueue boundary) before the next
// begins, which is what keeps the call stack flat no matter how many steps
// run: step always returns its promise immediately rather than blocking
// for the recursive call to complete.
func (f *Factory) Unfold(unspool UnspoolFunc, stop StopFunc, handler ItemHandler, seed any) *Promise {
	var step func(seed any) *Promise
	step = func(seed any) *Promise {
		return f.Cast(stop(seed)).Then(func(stopped any) any {
			if truthy(stopped) {
				return seed
			}
			item, next := unspool(seed)
			return f.Cast(handler(item)).Then(func(any) any {
				return step(next)
			}, nil, nil)
		}, nil, nil)
	}
	return step(seed)
}

// Iterate is Unfold specialized so the next seed is simply next(x) and the
// item handed to handler equals that next value.
func (f *Factory) Iterate(next func(x any) any, stop StopFunc, handler ItemHandler, x any) *Promise {
	var step func(x any) *Promise
	step = func(x any) *Promise {
		return f.Cast(stop(x)).Then(func(stopped any) any {
			if truthy(stopped) {
				return x
			}
			nx := next(x)
			return f.Cast(handler(nx)).Then(func(any) any {
				return step(nx)
			}, nil, nil)
		}, nil, nil)
	}
	return step(x)
}
