package state

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-ripple-toggle/internal/config"
	"go-ripple-toggle/internal/event"
	"go-ripple-toggle/internal/ripple"
	"go-ripple-toggle/internal/ui"
)

// ToggleState — единственная сцена: кнопка по центру, кольца под ней,
// переключатель отладки в углу.
type ToggleState struct {
	dispatcher  *event.Dispatcher
	emitter     *ripple.Emitter
	driver      *ripple.Driver
	toggle      *ripple.Toggle
	button      *ui.ToggleButton
	debugSwitch *ui.DebugSwitch
	layer       *ui.RippleLayer
}

func NewToggleState(opts config.Options, logger *log.Logger) *ToggleState {
	dispatcher := event.NewDispatcher()
	emitter := ripple.NewEmitter(dispatcher)
	driver := ripple.NewDriver(emitter, dispatcher, opts)
	if logger != nil {
		emitter.SetLogger(logger)
		driver.SetLogger(logger)
		logChange := event.ListenerFunc(func(e event.Event) {
			logger.Printf("%s: %v", e.Type, e.Data)
		})
		dispatcher.Subscribe(event.ToggleChanged, logChange)
		dispatcher.Subscribe(event.DebugChanged, logChange)
	}

	toggle := ripple.NewToggle(emitter, dispatcher)
	toggle.Debug = opts.Debug

	return &ToggleState{
		dispatcher:  dispatcher,
		emitter:     emitter,
		driver:      driver,
		toggle:      toggle,
		button:      ui.NewToggleButton(toggle, config.ToggleRadius),
		debugSwitch: ui.NewDebugSwitch(toggle, config.DebugSwitchX, config.DebugSwitchY, config.DebugSwitchRadius),
		layer:       ui.NewRippleLayer(driver, config.RasterSize),
	}
}

// Enter размещает кнопку; до этого момента кольца не запускаются.
func (s *ToggleState) Enter() {
	s.button.Place(config.ScreenWidth/2, config.ScreenHeight/2)
}

func (s *ToggleState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		s.toggle.ToggleDebug()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		s.driver.SetSpring(!s.driver.Options().Spring)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if s.debugSwitch.IsClicked(x, y) {
			s.debugSwitch.HandleClick()
		} else if s.button.IsClicked(x, y) {
			s.button.HandleClick()
		}
	}

	s.driver.Update(deltaTime)
}

func (s *ToggleState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	if anchor, ok := s.toggle.Anchor(); ok {
		s.layer.Draw(screen, anchor)
	}
	s.button.Draw(screen)
	s.debugSwitch.Draw(screen)

	mode := "tween"
	if s.driver.Options().Spring {
		mode = "spring"
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("active: %v  ripples: %d  mode: %s  [D] debug  [S] tween/spring",
		s.toggle.Active, s.emitter.Len(), mode), 10, config.ScreenHeight-20)
}

// Exit бросает незавершённые анимации и отписывает драйвер: сцена уходит
// целиком.
func (s *ToggleState) Exit() {
	s.driver.Close()
	s.layer.Release()
}
