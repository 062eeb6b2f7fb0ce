package when

// fulfilledHandler carries a sealed fulfillment value. It is terminal:
// join, notify and traverse are all no-ops/self per the data model.
type fulfilledHandler struct {
	f     *Factory
	value any
}

func newFulfilledHandler(f *Factory, value any) *fulfilledHandler {
	return &fulfilledHandler{f: f, value: value}
}

// when always schedules via the environment — a callback registered on an
// already-settled promise crosses the same turn boundary as one registered
// before settlement (spec §5 ordering guarantee 2).
func (h *fulfilledHandler) when(resolve resolveFunc, reject rejectFunc, notify notifyFunc, onF fulfillFunc, onR rejectHandlerFunc, onP progressFunc) {
	h.f.env.Enqueue(func() {
		if onF == nil {
			resolve(h.value)
			return
		}
		v, threw, reason := protect(func() any { return onF(h.value) })
		if threw {
			reject(reason)
			return
		}
		resolve(v)
	})
}

// notify is a no-op: progress after settlement is silently dropped, logged
// at debug level so the drop is observable without being acted on.
func (h *fulfilledHandler) notify(update any) {
	h.f.logger.Log("progress_after_settlement_dropped", map[string]any{"state": string(StateFulfilled), "update": update})
}

func (h *fulfilledHandler) join(next handler) handler { return h }

func (h *fulfilledHandler) traverse() handler { return h }

func (h *fulfilledHandler) inspect() Inspection {
	return Inspection{State: StateFulfilled, Value: h.value}
}
