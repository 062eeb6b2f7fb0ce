package when

// protect invokes fn, recovering any panic and reporting it as a raw reason
// rather than an error — a panic inside a transformer callback is this
// package's equivalent of a JavaScript throw, and the recovered value is
// used verbatim, with no wrapping or stringification (spec §7).
func protect(fn func() any) (result any, threw bool, reason any) {
	defer func() {
		if r := recover(); r != nil {
			threw = true
			reason = r
		}
	}()
	result = fn()
	return
}

// truthy mirrors just enough of JavaScript's truthiness to make stop
// predicates in Unfold/Iterate convenient: nil and false are falsy,
// everything else (including zero values of other types) is truthy.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	default:
		return true
	}
}
