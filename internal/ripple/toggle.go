package ripple

import "go-ripple-toggle/internal/event"

// Anchor — центр и радиус кнопки на экране.
type Anchor struct {
	X, Y   float64
	Radius float64
}

// Toggle owns the active/debug state of the single toggle control. Only the
// inactive→active flip spawns a ripple.
type Toggle struct {
	Active bool
	Debug  bool

	emitter    *Emitter
	dispatcher *event.Dispatcher
	anchor     *Anchor
}

func NewToggle(emitter *Emitter, dispatcher *event.Dispatcher) *Toggle {
	return &Toggle{emitter: emitter, dispatcher: dispatcher}
}

// SetAnchor задаёт положение кнопки. Радиус <= 0 снимает якорь.
func (t *Toggle) SetAnchor(x, y, radius float64) {
	if radius <= 0 {
		t.anchor = nil
		return
	}
	t.anchor = &Anchor{X: x, Y: y, Radius: radius}
}

// Anchor returns the current anchor, if any.
func (t *Toggle) Anchor() (Anchor, bool) {
	if t.anchor == nil {
		return Anchor{}, false
	}
	return *t.anchor, true
}

// Click переключает состояние.
func (t *Toggle) Click() (ID, bool) {
	return t.SetActive(!t.Active)
}

// SetActive задаёт состояние. Ripple появляется только при переходе
// выключено→включено и только если якорь уже известен; иначе молча
// пропускается.
func (t *Toggle) SetActive(active bool) (ID, bool) {
	wasActive := t.Active
	if wasActive == active {
		return 0, false
	}
	t.Active = active
	t.dispatcher.Dispatch(event.Event{Type: event.ToggleChanged, Data: active})
	if !active || t.anchor == nil {
		return 0, false
	}
	return t.emitter.Activate(), true
}

func (t *Toggle) SetDebug(debug bool) {
	if t.Debug == debug {
		return
	}
	t.Debug = debug
	t.dispatcher.Dispatch(event.Event{Type: event.DebugChanged, Data: debug})
}

func (t *Toggle) ToggleDebug() {
	t.SetDebug(!t.Debug)
}
