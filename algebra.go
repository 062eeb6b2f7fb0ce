package when

// FlatMap chains fn's result through Cast's trusted/thenable/plain-value
// classification: fn may return a *Promise, a Thenable, or a plain value,
// and the derived promise follows whichever it turns out to be. This is
// exactly what Then's onF argument already does with its return value, so
// FlatMap is Then with the reject/progress arms left passed-through.
func (p *Promise) FlatMap(fn func(value any) any) *Promise {
	return p.Then(fn, nil, nil)
}

// Map lifts an ordinary transformer into FlatMap by wrapping its result
// with Of.
func (p *Promise) Map(fn func(value any) any) *Promise {
	return p.FlatMap(func(v any) any {
		return p.f.Of(fn(v))
	})
}

// Ap applies this promise's fulfillment value, which must be a
// func(any) any, to arg's eventual value.
func (p *Promise) Ap(arg *Promise) *Promise {
	return p.FlatMap(func(fv any) any {
		fn, ok := fv.(func(any) any)
		if !ok {
			panic(&FilterRejection{Value: fv})
		}
		return arg.Map(fn)
	})
}

// Concat resolves to the first fulfillment of this promise or other, and
// rejects with both reasons only if both reject (Any's semantics over the
// pair).
func (p *Promise) Concat(other *Promise) *Promise {
	return p.f.Any([]any{p, other})
}

// Filter rejects with a *FilterRejection when pred(value) is false,
// otherwise passes value through unchanged.
func (p *Promise) Filter(pred func(value any) bool) *Promise {
	return p.Map(func(v any) any {
		if !pred(v) {
			panic(&FilterRejection{Value: v})
		}
		return v
	})
}

// Reduce folds this promise's single fulfillment value against initial,
// equivalent to Map(x => fn(initial, x)). This is folding a singleton, not
// a collection — there is exactly one value to fold.
func (p *Promise) Reduce(fn func(acc, value any) any, initial any) *Promise {
	return p.Map(func(v any) any { return fn(initial, v) })
}

// ReduceSingleton is the one-argument form of Reduce: it returns
// Resolve(p). Because Resolve follows a trusted promise rather than nesting
// it, the result settles with this promise's own outcome; no nested promise
// is ever observed (see DESIGN.md).
func (p *Promise) ReduceSingleton() *Promise {
	return p.f.Resolve(p)
}

// ReduceRight is identical to Reduce: folding a single value has no
// direction.
func (p *Promise) ReduceRight(fn func(acc, value any) any, initial any) *Promise {
	return p.Map(func(v any) any { return fn(initial, v) })
}

// ReduceRightSingleton mirrors ReduceSingleton.
func (p *Promise) ReduceRightSingleton() *Promise {
	return p.f.Resolve(p)
}
