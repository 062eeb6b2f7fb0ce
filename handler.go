package when

// resolveFunc, rejectFunc and notifyFunc are the three callbacks a resolver
// (or a handler's when) drives a promise's eventual settlement with. reason
// and update are deliberately any: a rejection reason, like a JavaScript
// throw value, is carried verbatim and is never required to satisfy error.
type (
	resolveFunc = func(value any)
	rejectFunc  = func(reason any)
	notifyFunc  = func(update any)
)

// fulfillFunc, rejectHandlerFunc and progressFunc are the transformer
// callbacks a consumer passes to Then. Any of the three may be nil, in
// which case the corresponding value/reason/update passes through
// unchanged.
type (
	fulfillFunc       = func(value any) any
	rejectHandlerFunc = func(reason any) any
	progressFunc      = func(update any) any
)

// consumer is one parked Then registration, queued on a pendingHandler
// until the promise it belongs to settles.
type consumer struct {
	resolve resolveFunc
	reject  rejectFunc
	notify  notifyFunc
	onF     fulfillFunc
	onR     rejectHandlerFunc
	onP     progressFunc
}

// State is the textual state a Promise's Inspect snapshot reports. These
// three literal strings are part of the external contract.
type State string

const (
	StatePending   State = "pending"
	StateFulfilled State = "fulfilled"
	StateRejected  State = "rejected"
)

// Inspection is the state snapshot returned by Promise.Inspect.
type Inspection struct {
	State  State
	Value  any
	Reason any
}

// handler is the capability set every one of the six handler variants
// implements; unsupported operations are no-ops as tabulated in the data
// model (a Fulfilled handler's join is a no-op, an Empty handler's when
// never calls back, and so on).
type handler interface {
	// when registers (or immediately schedules, for a terminal handler) a
	// consumer's callbacks.
	when(resolve resolveFunc, reject rejectFunc, notify notifyFunc, onF fulfillFunc, onR rejectHandlerFunc, onP progressFunc)

	// notify delivers a progress update. A no-op on every terminal or
	// terminal-adjacent variant.
	notify(update any)

	// join is the transition primitive: installing next as the handler
	// that follows this one. Only a still-pending handler accepts the
	// side effect; every other variant returns itself unchanged.
	join(next handler) handler

	// traverse walks through any Following indirection to the most
	// immediate non-Following handler.
	traverse() handler

	// inspect produces this handler's state snapshot.
	inspect() Inspection
}

// Thenable is the shape an untrusted foreign value must expose to be
// assimilated by resolve: a callable Then accepting the same three
// callbacks a resolver does. Trusted promises (*Promise) are recognized by
// their concrete Go type rather than by satisfying this interface — see
// resolve.go.
type Thenable interface {
	Then(resolve func(any), reject func(any), notify func(any))
}
