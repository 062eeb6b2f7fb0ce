package when

// rejectedHandler carries a sealed rejection reason, used verbatim with no
// wrapping or stringification.
type rejectedHandler struct {
	f      *Factory
	reason any
}

func newRejectedHandler(f *Factory, reason any) *rejectedHandler {
	return &rejectedHandler{f: f, reason: reason}
}

func (h *rejectedHandler) when(resolve resolveFunc, reject rejectFunc, notify notifyFunc, onF fulfillFunc, onR rejectHandlerFunc, onP progressFunc) {
	h.f.env.Enqueue(func() {
		if onR == nil {
			reject(h.reason)
			return
		}
		v, threw, reason := protect(func() any { return onR(h.reason) })
		if threw {
			reject(reason)
			return
		}
		resolve(v)
	})
}

func (h *rejectedHandler) notify(update any) {
	h.f.logger.Log("progress_after_settlement_dropped", map[string]any{"state": string(StateRejected), "update": update})
}

func (h *rejectedHandler) join(next handler) handler { return h }

func (h *rejectedHandler) traverse() handler { return h }

func (h *rejectedHandler) inspect() Inspection {
	return Inspection{State: StateRejected, Reason: h.reason}
}
