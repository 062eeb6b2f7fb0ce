package when

// pendingHandler is the only variant that ever mutates in place: it owns an
// append-only queue of parked consumers until join drains it exactly once.
type pendingHandler struct {
	owner   *Promise
	queue   []consumer
	drained []consumer
}

func newPendingHandler(owner *Promise) *pendingHandler {
	return &pendingHandler{owner: owner}
}

// when parks the consumer if this handler is still the promise's current
// handler, otherwise the promise has already transitioned out from under
// this (now stale) handler and the call is redirected to whatever handler
// is current.
func (h *pendingHandler) when(resolve resolveFunc, reject rejectFunc, notify notifyFunc, onF fulfillFunc, onR rejectHandlerFunc, onP progressFunc) {
	h.owner.mu.Lock()
	if cur, ok := h.owner.handler.(*pendingHandler); ok && cur == h {
		h.queue = append(h.queue, consumer{resolve: resolve, reject: reject, notify: notify, onF: onF, onR: onR, onP: onP})
		h.owner.mu.Unlock()
		return
	}
	cur := h.owner.handler
	h.owner.mu.Unlock()
	cur.when(resolve, reject, notify, onF, onR, onP)
}

// notify fans a progress update out to every currently-queued consumer, one
// enqueued task per consumer, each delivered through a transient
// progressHandler so the dispatch logic (apply onP, catch panics, feed the
// recovered value back as the new update) lives in exactly one place.
func (h *pendingHandler) notify(update any) {
	h.owner.mu.Lock()
	snapshot := append([]consumer(nil), h.queue...)
	env := h.owner.f.env
	h.owner.mu.Unlock()

	for _, c := range snapshot {
		c := c
		env.Enqueue(func() {
			(&progressHandler{update: update}).when(c.resolve, c.reject, c.notify, c.onF, c.onR, c.onP)
		})
	}
}

// join is the transition primitive: it snapshots and clears the queue, then
// returns next to be installed as the promise's new handler. The caller
// (Promise.settle) is responsible for draining the snapshot after
// installing next, outside of the owner's lock.
func (h *pendingHandler) join(next handler) handler {
	h.drained = h.queue
	h.queue = nil
	return next
}

func (h *pendingHandler) traverse() handler { return h }

func (h *pendingHandler) inspect() Inspection { return Inspection{State: StatePending} }
