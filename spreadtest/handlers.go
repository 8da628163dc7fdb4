package spreadtest

import "github.com/iov-one/spread"

// Handler implements spread.Handler with configurable results
// and call counters.
type Handler struct {
	checkCall   int
	CheckResult spread.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult spread.DeliverResult
	DeliverErr    error
}

var _ spread.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx spread.Context, db spread.KVStore, tx spread.Tx) (*spread.CheckResult, error) {
	h.checkCall++
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx spread.Context, db spread.KVStore, tx spread.Tx) (*spread.DeliverResult, error) {
	h.deliverCall++
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}
