package ripple

import (
	"log"
	"sort"
	"time"

	"go-ripple-toggle/internal/config"
	"go-ripple-toggle/internal/event"
)

// Track — анимация одного ripple.
type Track struct {
	ID      ID
	Phase   Phase
	Elapsed time.Duration
	Frame   Frame
	Spec    AnimationSpec

	completion *Completion
}

// Stops returns the gradient of the track's current frame.
func (t Track) Stops() []Stop {
	return t.Spec.Stops(t.Frame)
}

// Driver ведёт по одной анимации на каждый ripple эмиттера и сообщает
// эмиттеру о завершении ровно один раз.
type Driver struct {
	emitter    *Emitter
	dispatcher *event.Dispatcher
	opts       config.Options
	tracks     map[ID]*Track
	logger     *log.Logger
}

// NewDriver создаёт драйвер и подписывает его на события эмиттера.
func NewDriver(emitter *Emitter, dispatcher *event.Dispatcher, opts config.Options) *Driver {
	d := &Driver{
		emitter:    emitter,
		dispatcher: dispatcher,
		opts:       opts,
		tracks:     make(map[ID]*Track),
	}
	if dispatcher != nil {
		dispatcher.Subscribe(event.RippleSpawned, d)
		dispatcher.Subscribe(event.DebugChanged, d)
	}
	return d
}

func (d *Driver) SetLogger(l *log.Logger) { d.logger = l }

// Options returns the parameters used for newly spawned ripples.
func (d *Driver) Options() config.Options { return d.opts }

// SetSpring switches between the tween and the spring for new ripples.
// Ripples already in flight keep their spec.
func (d *Driver) SetSpring(on bool) { d.opts.Spring = on }

func (d *Driver) OnEvent(e event.Event) {
	switch e.Type {
	case event.RippleSpawned:
		if id, ok := e.Data.(ID); ok {
			d.Start(id)
		}
	case event.DebugChanged:
		if debug, ok := e.Data.(bool); ok {
			d.opts.Debug = debug
		}
	}
}

// Start creates a track for id. A second Start for the same id is ignored.
func (d *Driver) Start(id ID) {
	if _, exists := d.tracks[id]; exists {
		return
	}
	spec := NewAnimationSpec(d.opts)
	d.tracks[id] = &Track{
		ID:         id,
		Phase:      Spawned,
		Frame:      spec.Initial,
		Spec:       spec,
		completion: NewCompletion(),
	}
}

// Update продвигает все анимации на deltaTime секунд. Завершённые треки
// удаляются, эмиттер получает Complete.
func (d *Driver) Update(deltaTime float64) {
	dt := time.Duration(deltaTime * float64(time.Second))
	for _, id := range d.ids() {
		track := d.tracks[id]
		track.Phase = Animating
		track.Elapsed += dt

		frame, settled := track.Spec.At(track.Elapsed)
		track.Frame = frame
		if !settled {
			continue
		}

		track.Phase = Completed
		delete(d.tracks, id)
		if track.completion.Resolve() {
			d.emitter.Complete(id)
			if d.logger != nil {
				d.logger.Printf("ripple %d settled after %s", id, track.Elapsed)
			}
		}
	}
}

// Abandon drops every track without reporting completion. Used on teardown;
// calling it again is a no-op.
func (d *Driver) Abandon() {
	for id, track := range d.tracks {
		track.completion.Abandon()
		delete(d.tracks, id)
	}
}

// Close бросает все треки и отписывает драйвер от диспетчера: после этого
// новые ripple эмиттера анимацию не получают.
func (d *Driver) Close() {
	d.Abandon()
	if d.dispatcher == nil {
		return
	}
	d.dispatcher.Unsubscribe(event.RippleSpawned, d)
	d.dispatcher.Unsubscribe(event.DebugChanged, d)
	d.dispatcher = nil
}

// Completion returns the single-shot completion of a track in flight.
func (d *Driver) Completion(id ID) (*Completion, bool) {
	track, ok := d.tracks[id]
	if !ok {
		return nil, false
	}
	return track.completion, true
}

func (d *Driver) Len() int { return len(d.tracks) }

// Tracks возвращает копии треков в порядке id (старые рисуются первыми).
func (d *Driver) Tracks() []Track {
	out := make([]Track, 0, len(d.tracks))
	for _, id := range d.ids() {
		out = append(out, *d.tracks[id])
	}
	return out
}

func (d *Driver) ids() []ID {
	ids := make([]ID, 0, len(d.tracks))
	for id := range d.tracks {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
