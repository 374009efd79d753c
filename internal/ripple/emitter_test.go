package ripple

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-ripple-toggle/internal/event"
)

func TestEmitterIdsAreMonotonic(t *testing.T) {
	e := NewEmitter(nil)
	a := e.Activate()
	b := e.Activate()
	assert.Equal(t, ID(1), a)
	assert.Equal(t, ID(2), b)

	assert.True(t, e.Complete(a))
	c := e.Activate()
	assert.Equal(t, ID(3), c, "ids are never reused")
	assert.Equal(t, []ID{2, 3}, e.Active())
}

func TestEmitterCompleteIsIdempotent(t *testing.T) {
	e := NewEmitter(nil)
	a := e.Activate()
	b := e.Activate()

	assert.True(t, e.Complete(a))
	assert.False(t, e.Complete(a))
	assert.False(t, e.Complete(99))
	assert.Equal(t, []ID{b}, e.Active())
	assert.Equal(t, 1, e.Len())
	assert.False(t, e.Contains(a))
	assert.True(t, e.Contains(b))
}

func TestEmitterDispatchesLifecycle(t *testing.T) {
	d := event.NewDispatcher()
	var spawned, completed []ID
	d.Subscribe(event.RippleSpawned, event.ListenerFunc(func(e event.Event) {
		spawned = append(spawned, e.Data.(ID))
	}))
	d.Subscribe(event.RippleCompleted, event.ListenerFunc(func(e event.Event) {
		completed = append(completed, e.Data.(ID))
	}))

	e := NewEmitter(d)
	id := e.Activate()
	e.Complete(id)
	e.Complete(id)

	assert.Equal(t, []ID{id}, spawned)
	assert.Equal(t, []ID{id}, completed)
}

func TestCompletion(t *testing.T) {
	c := NewCompletion()
	assert.True(t, c.Resolve())
	assert.False(t, c.Resolve())
	c.Abandon()
	assert.False(t, c.Abandoned())
	<-c.Done()

	c = NewCompletion()
	c.Abandon()
	c.Abandon()
	assert.True(t, c.Abandoned())
	assert.False(t, c.Resolve())
	<-c.Done()
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "spawned", Spawned.String())
	assert.Equal(t, "animating", Animating.String())
	assert.Equal(t, "completed", Completed.String())
}
