package when

import (
	"sync"
	"time"
)

// Delay schedules resolve(x) after d once this promise fulfills; d is not
// applied to a rejection, which propagates immediately. Progress updates
// are forwarded unchanged.
func (p *Promise) Delay(d time.Duration) *Promise {
	next := p.f.newPendingPromise()
	p.currentHandler().when(
		func(v any) {
			p.f.env.SetTimer(func() { next.resolve(v) }, d)
		},
		func(r any) { next.reject(r) },
		func(u any) { next.notifyUpdate(u) },
		nil, nil, nil,
	)
	return next
}

// Timeout starts a timer for d at call time. If the timer fires before
// this promise settles, the result rejects with a *TimeoutError naming d.
// If this promise settles first, its timer is cancelled and the result
// adopts that outcome (whichever branch it was).
func (p *Promise) Timeout(d time.Duration) *Promise {
	next := p.f.newPendingPromise()

	var mu sync.Mutex
	var settled bool
	claim := func() bool {
		mu.Lock()
		defer mu.Unlock()
		if settled {
			return false
		}
		settled = true
		return true
	}

	handle := p.f.env.SetTimer(func() {
		if claim() {
			next.reject(newTimeoutError(d))
		}
	}, d)

	p.currentHandler().when(
		func(v any) {
			if claim() {
				p.f.env.CancelTimer(handle)
				next.resolve(v)
			}
		},
		func(r any) {
			if claim() {
				p.f.env.CancelTimer(handle)
				next.reject(r)
			}
		},
		func(u any) { next.notifyUpdate(u) },
		nil, nil, nil,
	)
	return next
}
