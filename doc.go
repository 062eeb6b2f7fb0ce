// Package when implements a deterministic, monadic promise runtime: a
// pluggable handler state machine underlying each promise, plus the
// combinators (then, catch, all, any, some, race, settle, unfold, iterate)
// built on top of it.
//
// A Promise is a thin wrapper around exactly one handler; the six handler
// variants (pending, fulfilled, rejected, following, progress, empty) carry
// all of the state-transition logic. Scheduling and timers are supplied by
// an injected Environment (see environment.go) rather than baked into the
// package, so the package itself never blocks a goroutine waiting on I/O.
//
// Callbacks registered with Then never run on the same call stack as the
// registration; see Environment for the scheduling contract this relies on.
package when
