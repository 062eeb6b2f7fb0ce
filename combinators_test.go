package when

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAllPreservesInputOrder(t *testing.T) {
	f, teardown := newTestFactory(t)
	defer teardown()

	p := f.All([]any{f.Of(1), f.Of(2), f.Of(3)})
	ins := await(t, p, time.Second)
	assert.Equal(t, StateFulfilled, ins.State)
	assert.Equal(t, []any{1, 2, 3}, ins.Value)
}

func TestAllFailsFastOnFirstRejection(t *testing.T) {
	f, teardown := newTestFactory(t)
	defer teardown()

	p := f.All([]any{f.Of(1), f.Reject("bad"), f.Of(3)})
	ins := await(t, p, time.Second)
	assert.Equal(t, StateRejected, ins.State)
	assert.Equal(t, "bad", ins.Reason)
}

func TestAllOfEmptyInputResolvesToEmptySlice(t *testing.T) {
	f, teardown := newTestFactory(t)
	defer teardown()

	p := f.All(nil)
	ins := await(t, p, time.Second)
	assert.Equal(t, StateFulfilled, ins.State)
	assert.Equal(t, []any{}, ins.Value)
}

func TestAnyResolvesToFirstFulfillment(t *testing.T) {
	f, teardown := newTestFactory(t)
	defer teardown()

	p := f.Any([]any{f.Reject("a"), f.Reject("b"), f.Of(42), f.Reject("c")})
	ins := await(t, p, time.Second)
	assert.Equal(t, StateFulfilled, ins.State)
	assert.Equal(t, 42, ins.Value)
}

func TestAnyRejectsWithReasonsInRejectionOrder(t *testing.T) {
	f, teardown := newTestFactory(t)
	defer teardown()

	p := f.Any([]any{f.Reject(1), f.Reject(2)})
	ins := await(t, p, time.Second)
	assert.Equal(t, StateRejected, ins.State)
	assert.Equal(t, []any{1, 2}, ins.Reason)
}

func TestSomeCollectsFirstNFulfillments(t *testing.T) {
	f, teardown := newTestFactory(t)
	defer teardown()

	p := f.Some([]any{f.Of(1), f.Reject("x"), f.Of(2), f.Of(3)}, 2)
	ins := await(t, p, time.Second)
	assert.Equal(t, StateFulfilled, ins.State)
	assert.Equal(t, []any{1, 2}, ins.Value)
}

func TestSomeRejectsWhenSuccessBecomesImpossible(t *testing.T) {
	f, teardown := newTestFactory(t)
	defer teardown()

	p := f.Some([]any{f.Reject("a"), f.Reject("b"), f.Of(1)}, 2)
	ins := await(t, p, time.Second)
	assert.Equal(t, StateRejected, ins.State)
	assert.Equal(t, []any{"a", "b"}, ins.Reason)
}

func TestRaceAdoptsFirstSettlement(t *testing.T) {
	f, teardown := newTestFactory(t)
	defer teardown()

	slow := f.Promise(func(resolve, reject, notify func(any)) {
		f.env.SetTimer(func() { resolve("a") }, 10*time.Millisecond)
	})
	fast := f.Of("b")

	p := f.Race([]any{slow, fast})
	ins := await(t, p, time.Second)
	assert.Equal(t, "b", ins.Value)
}

func TestRaceOfEmptyInputNeverSettles(t *testing.T) {
	f, teardown := newTestFactory(t)
	defer teardown()

	p := f.Race(nil)
	time.Sleep(20 * time.Millisecond)
	ins := p.Inspect()
	assert.Equal(t, StatePending, ins.State)
}

func TestSettleNeverRejects(t *testing.T) {
	f, teardown := newTestFactory(t)
	defer teardown()

	p := f.Settle([]any{f.Of(1), f.Reject("e")})
	ins := await(t, p, time.Second)
	assert.Equal(t, StateFulfilled, ins.State)
	assert.Equal(t, []Inspection{
		{State: StateFulfilled, Value: 1},
		{State: StateRejected, Reason: "e"},
	}, ins.Value)
}

func TestCastReturnsTrustedPromiseUnchanged(t *testing.T) {
	f, teardown := newTestFactory(t)
	defer teardown()

	p := f.Of(1)
	assert.Same(t, p, f.Cast(p))
}

func TestEmptyIsObservablyPendingForever(t *testing.T) {
	f, teardown := newTestFactory(t)
	defer teardown()

	p := f.Empty()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, StatePending, p.Inspect().State)
}
