// Package ripple holds the ripple lifecycle: the emitter that owns active
// instances, the gradient geometry, the animation tracks and the toggle that
// triggers them.
package ripple

import (
	"log"
	"sort"

	"go-ripple-toggle/internal/event"
)

// ID идентифицирует ripple. Начинается с 1 и никогда не переиспользуется.
type ID uint64

// Phase — состояние одного ripple.
type Phase int

const (
	Spawned Phase = iota
	Animating
	Completed
)

func (p Phase) String() string {
	switch p {
	case Spawned:
		return "spawned"
	case Animating:
		return "animating"
	case Completed:
		return "completed"
	}
	return "unknown"
}

// Instance — активный ripple. Геометрия у всех одинаковая, поэтому
// хранится только идентичность.
type Instance struct {
	ID ID
}

// Emitter владеет списком активных ripple.
type Emitter struct {
	nextID     ID
	active     map[ID]*Instance
	dispatcher *event.Dispatcher
	logger     *log.Logger
}

// NewEmitter создаёт эмиттер. dispatcher может быть nil.
func NewEmitter(dispatcher *event.Dispatcher) *Emitter {
	return &Emitter{
		nextID:     1,
		active:     make(map[ID]*Instance),
		dispatcher: dispatcher,
	}
}

// SetLogger включает журнал жизненного цикла.
func (e *Emitter) SetLogger(l *log.Logger) { e.logger = l }

// Activate добавляет новый ripple и сообщает о нём подписчикам.
func (e *Emitter) Activate() ID {
	id := e.nextID
	e.nextID++
	e.active[id] = &Instance{ID: id}
	if e.logger != nil {
		e.logger.Printf("ripple %d spawned (%d active)", id, len(e.active))
	}
	e.dispatcher.Dispatch(event.Event{Type: event.RippleSpawned, Data: id})
	return id
}

// Complete удаляет ripple с данным id. Повторный вызов или неизвестный id
// ничего не меняют и возвращают false.
func (e *Emitter) Complete(id ID) bool {
	if _, ok := e.active[id]; !ok {
		return false
	}
	delete(e.active, id)
	if e.logger != nil {
		e.logger.Printf("ripple %d completed (%d active)", id, len(e.active))
	}
	e.dispatcher.Dispatch(event.Event{Type: event.RippleCompleted, Data: id})
	return true
}

// Contains reports whether id is still active.
func (e *Emitter) Contains(id ID) bool {
	_, ok := e.active[id]
	return ok
}

func (e *Emitter) Len() int { return len(e.active) }

// Active returns the active ids in ascending order.
func (e *Emitter) Active() []ID {
	ids := make([]ID, 0, len(e.active))
	for id := range e.active {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
