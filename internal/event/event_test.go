package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

func TestDispatchOnlyToSubscribedType(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(RippleSpawned, r)

	d.Dispatch(Event{Type: RippleSpawned, Data: 1})
	d.Dispatch(Event{Type: RippleCompleted, Data: 1})

	assert.Len(t, r.got, 1)
	assert.Equal(t, RippleSpawned, r.got[0].Type)
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(ToggleChanged, a)
	d.Subscribe(ToggleChanged, b)
	d.Unsubscribe(ToggleChanged, a)

	d.Dispatch(Event{Type: ToggleChanged, Data: true})

	assert.Empty(t, a.got)
	assert.Len(t, b.got, 1)
}

func TestListenerFuncAndNilDispatcher(t *testing.T) {
	calls := 0
	d := NewDispatcher()
	d.Subscribe(DebugChanged, ListenerFunc(func(Event) { calls++ }))
	d.Dispatch(Event{Type: DebugChanged, Data: true})
	assert.Equal(t, 1, calls)

	var nilD *Dispatcher
	assert.NotPanics(t, func() { nilD.Dispatch(Event{Type: DebugChanged}) })
}
