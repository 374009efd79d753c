// pkg/render/color.go
package render

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"go-ripple-toggle/internal/utils"
)

// Palette holds the colors of a snapshot scene.
type Palette struct {
	Background color.RGBA
	ToggleOn   color.RGBA
	ToggleOff  color.RGBA
	Guide      color.RGBA
}

// Darken уменьшает светлоту цвета в HCL на amount (0..1), оттенок
// сохраняется. Альфа не меняется.
func Darken(c color.RGBA, amount float64) color.RGBA {
	if amount <= 0 {
		return c
	}
	cc, _ := colorful.MakeColor(opaque(c))
	h, chroma, l := cc.Hcl()
	l *= 1 - utils.Clamp01(amount)
	r, g, b := colorful.Hcl(h, chroma, l).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: c.A}
}

// CSSColor formats c as rgb(r,g,b), alpha is ignored.
func CSSColor(c color.RGBA) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// blend смешивает два непрозрачных цвета в пространстве RGB.
func blend(a, b color.RGBA, t float64) color.RGBA {
	if a == b || t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	ca, _ := colorful.MakeColor(opaque(a))
	cb, _ := colorful.MakeColor(opaque(b))
	r, g, bl := ca.BlendRgb(cb, t).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: bl, A: 255}
}

// premultiply применяет непрозрачность к цвету (ebiten и image.RGBA хранят
// предумноженные значения).
func premultiply(c color.RGBA, opacity float64) color.RGBA {
	a := opacity * 255
	return color.RGBA{
		R: uint8(float64(c.R)*opacity + 0.5),
		G: uint8(float64(c.G)*opacity + 0.5),
		B: uint8(float64(c.B)*opacity + 0.5),
		A: uint8(a + 0.5),
	}
}

func opaque(c color.RGBA) color.RGBA {
	c.A = 255
	return c
}
