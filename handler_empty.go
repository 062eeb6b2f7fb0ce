package when

// emptyHandler is observably pending forever: when never calls back,
// notify never fires, join refuses the side effect. Used by Factory.Empty.
type emptyHandler struct{}

func newEmptyHandler() *emptyHandler { return &emptyHandler{} }

func (h *emptyHandler) when(resolveFunc, rejectFunc, notifyFunc, fulfillFunc, rejectHandlerFunc, progressFunc) {
}

func (h *emptyHandler) notify(update any) {}

func (h *emptyHandler) join(next handler) handler { return h }

func (h *emptyHandler) traverse() handler { return h }

func (h *emptyHandler) inspect() Inspection { return Inspection{State: StatePending} }
