package when

// followingHandler delegates to a target promise. It never becomes the
// terminal record itself; traverse walks through it (and through any chain
// of further Following handlers beyond it) to find the terminal handler.
//
// Path compression (caching the walked-to handler back onto this struct) is
// allowed by the data model but not required; this implementation always
// re-walks, trading a little work on a long chain for not having to reason
// about mutating a handler that another goroutine might be traversing
// concurrently. See DESIGN.md.
type followingHandler struct {
	target *Promise
}

func newFollowingHandler(target *Promise) *followingHandler {
	return &followingHandler{target: target}
}

func (h *followingHandler) when(resolve resolveFunc, reject rejectFunc, notify notifyFunc, onF fulfillFunc, onR rejectHandlerFunc, onP progressFunc) {
	h.traverse().when(resolve, reject, notify, onF, onR, onP)
}

// notify is a no-op: once a promise has adopted another, progress flows
// through the adopted chain's own registrations, not through pushes onto
// the adopting wrapper.
func (h *followingHandler) notify(update any) {}

func (h *followingHandler) join(next handler) handler { return h }

func (h *followingHandler) traverse() handler {
	h.target.mu.Lock()
	cur := h.target.handler
	h.target.mu.Unlock()
	return cur.traverse()
}

func (h *followingHandler) inspect() Inspection {
	return h.target.Inspect()
}
