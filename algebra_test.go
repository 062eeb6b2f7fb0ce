package when

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMapTransformsFulfillmentValue(t *testing.T) {
	f, teardown := newTestFactory(t)
	defer teardown()

	p := f.Of(2).Map(func(v any) any { return v.(int) * 10 })
	ins := await(t, p, time.Second)
	assert.Equal(t, 20, ins.Value)
}

func TestFlatMapFlattensNestedPromise(t *testing.T) {
	f, teardown := newTestFactory(t)
	defer teardown()

	p := f.Of(2).FlatMap(func(v any) any { return f.Of(v.(int) + 1) })
	ins := await(t, p, time.Second)
	assert.Equal(t, StateFulfilled, ins.State)
	assert.Equal(t, 3, ins.Value)
}

func TestApAppliesFunctionPromiseToValuePromise(t *testing.T) {
	f, teardown := newTestFactory(t)
	defer teardown()

	fn := func(v any) any { return v.(int) + 1 }
	p := f.Of(any(fn)).Ap(f.Of(41))
	ins := await(t, p, time.Second)
	assert.Equal(t, 42, ins.Value)
}

func TestConcatResolvesWithFirstFulfillmentOfThePair(t *testing.T) {
	f, teardown := newTestFactory(t)
	defer teardown()

	p := f.Reject("a").Concat(f.Of("b"))
	ins := await(t, p, time.Second)
	assert.Equal(t, "b", ins.Value)
}

func TestFilterRejectsValuesFailingPredicate(t *testing.T) {
	f, teardown := newTestFactory(t)
	defer teardown()

	pass := f.Of(4).Filter(func(v any) bool { return v.(int)%2 == 0 })
	fail := f.Of(3).Filter(func(v any) bool { return v.(int)%2 == 0 })

	passIns := await(t, pass, time.Second)
	failIns := await(t, fail, time.Second)

	assert.Equal(t, StateFulfilled, passIns.State)
	assert.Equal(t, 4, passIns.Value)
	assert.Equal(t, StateRejected, failIns.State)
	_, ok := failIns.Reason.(*FilterRejection)
	assert.True(t, ok)
}

func TestReduceFoldsSingleValue(t *testing.T) {
	f, teardown := newTestFactory(t)
	defer teardown()

	p := f.Of(5).Reduce(func(acc, v any) any { return acc.(int) + v.(int) }, 10)
	ins := await(t, p, time.Second)
	assert.Equal(t, 15, ins.Value)
}

func TestReduceSingletonIsEquivalentToResolveOfSelf(t *testing.T) {
	f, teardown := newTestFactory(t)
	defer teardown()

	// ReduceSingleton is specified as resolve(this): since a trusted
	// promise is always followed rather than nested, this flattens to the
	// original's own eventual value rather than surfacing a nested
	// promise observably. See the Open Question recorded in DESIGN.md.
	original := f.Of(5)
	p := original.ReduceSingleton()
	ins := await(t, p, time.Second)
	assert.Equal(t, StateFulfilled, ins.State)
	assert.Equal(t, 5, ins.Value)
}
