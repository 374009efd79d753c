// internal/ui/toggle_button.go
package ui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-ripple-toggle/internal/config"
	"go-ripple-toggle/internal/ripple"
	"go-ripple-toggle/internal/utils"
	"go-ripple-toggle/pkg/render"
)

// ToggleButton — круглая кнопка-переключатель, «вздувается» после клика.
type ToggleButton struct {
	X, Y          float32
	Radius        float32
	LastClickTime time.Time
	toggle        *ripple.Toggle
}

func NewToggleButton(toggle *ripple.Toggle, radius float32) *ToggleButton {
	return &ToggleButton{Radius: radius, toggle: toggle}
}

// Place ставит кнопку и сообщает переключателю, откуда пускать кольца.
func (b *ToggleButton) Place(x, y float32) {
	b.X, b.Y = x, y
	b.toggle.SetAnchor(float64(x), float64(y), float64(b.Radius))
}

func (b *ToggleButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	r := b.Radius * float32(utils.Pulse(elapsed))

	fill := config.ToggleOffColor
	if b.toggle.Active {
		fill = config.ToggleOnColor
	}
	if b.pressed() {
		fill = render.Darken(fill, config.PressedDarken)
	}
	vector.DrawFilledCircle(screen, b.X, b.Y, r, fill, true)
	vector.StrokeCircle(screen, b.X, b.Y, r, config.ToggleStrokeSize, config.ToggleStroke, true)
}

func (b *ToggleButton) IsClicked(mx, my int) bool {
	dx := float32(mx) - b.X
	dy := float32(my) - b.Y
	return dx*dx+dy*dy <= b.Radius*b.Radius
}

// pressed — левая кнопка мыши зажата над кнопкой.
func (b *ToggleButton) pressed() bool {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return false
	}
	return b.IsClicked(ebiten.CursorPosition())
}

// HandleClick переключает кнопку, если прошёл cooldown.
func (b *ToggleButton) HandleClick() {
	if time.Since(b.LastClickTime) < time.Duration(config.ClickCooldown)*time.Millisecond {
		return
	}
	b.toggle.Click()
	b.LastClickTime = time.Now()
}
