// internal/ui/debug_switch.go
package ui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-ripple-toggle/internal/config"
	"go-ripple-toggle/internal/ripple"
	"go-ripple-toggle/internal/utils"
)

// DebugSwitch — маленький индикатор режима отладки с подписью.
type DebugSwitch struct {
	X, Y          float32
	Radius        float32
	LastClickTime time.Time
	toggle        *ripple.Toggle
	fontFace      font.Face
}

func NewDebugSwitch(toggle *ripple.Toggle, x, y, radius float32) *DebugSwitch {
	return &DebugSwitch{
		X:        x,
		Y:        y,
		Radius:   radius,
		toggle:   toggle,
		fontFace: basicfont.Face7x13,
	}
}

func (s *DebugSwitch) Draw(screen *ebiten.Image) {
	elapsed := time.Since(s.LastClickTime).Seconds()
	r := s.Radius * float32(utils.Pulse(elapsed))

	fill := config.ToggleOffColor
	if s.toggle.Debug {
		fill = config.DebugRingColor
	}
	vector.DrawFilledCircle(screen, s.X, s.Y, r, fill, true)
	vector.StrokeCircle(screen, s.X, s.Y, r, config.ToggleStrokeSize, config.DebugBorderColor, true)

	label := "debug off"
	if s.toggle.Debug {
		label = "debug on"
	}
	text.Draw(screen, label, s.fontFace, int(s.X+s.Radius*2), int(s.Y)+4, config.TextLightColor)
}

func (s *DebugSwitch) IsClicked(mx, my int) bool {
	dx := float32(mx) - s.X
	dy := float32(my) - s.Y
	return dx*dx+dy*dy <= s.Radius*s.Radius*2.25
}

func (s *DebugSwitch) HandleClick() {
	if time.Since(s.LastClickTime) < time.Duration(config.ClickCooldown)*time.Millisecond {
		return
	}
	s.toggle.ToggleDebug()
	s.LastClickTime = time.Now()
}
