package when

// progressHandler is never installed as a promise's handler; it is a
// transient value constructed per update and fed through the same when
// dispatch used for terminal handoff, so applying onP (with panic
// recovery feeding the recovered value back as the new update) lives in
// one place regardless of whether the update arrives before or is
// replayed after a pendingHandler's fan-out.
type progressHandler struct {
	update any
}

func (h *progressHandler) when(resolve resolveFunc, reject rejectFunc, notify notifyFunc, onF fulfillFunc, onR rejectHandlerFunc, onP progressFunc) {
	if notify == nil {
		return
	}
	if onP == nil {
		notify(h.update)
		return
	}
	v, threw, reason := protect(func() any { return onP(h.update) })
	if threw {
		notify(reason)
		return
	}
	notify(v)
}

func (h *progressHandler) notify(update any) {}

func (h *progressHandler) join(next handler) handler { return h }

func (h *progressHandler) traverse() handler { return h }

func (h *progressHandler) inspect() Inspection { return Inspection{State: StatePending} }
