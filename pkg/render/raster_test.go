package render

import (
	"image/color"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"

	"go-ripple-toggle/internal/config"
	"go-ripple-toggle/internal/ripple"
)

func prodStops() []ripple.Stop {
	return ripple.Stops(ripple.GradientConfig{Color: config.RippleColor, Opacity: 0.9, RingOpacity: 1, RingWidth: 20}, 10)
}

func TestSample(t *testing.T) {
	stops := prodStops()

	assert.Equal(t, color.RGBA{}, Sample(stops, 0))
	assert.Equal(t, color.RGBA{}, Sample(stops, 20))
	assert.Equal(t, color.RGBA{}, Sample(stops, 100))
	assert.Equal(t, color.RGBA{}, Sample(nil, 50))

	ring := Sample(stops, 50)
	assert.Equal(t, premultiply(config.RippleColor, 0.9), ring)

	// Feather is half way between transparent and the ring.
	half := Sample(stops, 35)
	assert.Equal(t, uint8(115), half.A)
}

func TestSampleHardStep(t *testing.T) {
	stops := ripple.Stops(ripple.GradientConfig{RingWidth: 20, Debug: true}, 10)
	// 40 is both the end of the inner ghost band and the start of the ring.
	assert.Equal(t, premultiply(config.DebugRingColor, 1), Sample(stops, 40))
	assert.Equal(t, premultiply(config.DebugBorderColor, config.GhostOpacity), Sample(stops, 35))
}

func TestRasterize(t *testing.T) {
	img := RasterizeStops(200, prodStops())

	assert.Equal(t, color.RGBA{}, img.RGBAAt(100, 100), "transparent center")
	assert.Equal(t, color.RGBA{}, img.RGBAAt(0, 0), "outside the circle")

	onRing := img.RGBAAt(150, 100)
	assert.Equal(t, uint8(230), onRing.A)
	assert.Equal(t, premultiply(config.RippleColor, 0.9), onRing)
}

func TestBlendEnds(t *testing.T) {
	a := color.RGBA{10, 20, 30, 255}
	b := color.RGBA{200, 100, 0, 255}
	assert.Equal(t, a, blend(a, b, 0))
	assert.Equal(t, b, blend(a, b, 1))
	assert.Equal(t, "rgb(10,20,30)", CSSColor(a))
}

func TestDarken(t *testing.T) {
	c := config.ToggleOnColor
	assert.Equal(t, c, Darken(c, 0))

	lightness := func(c color.RGBA) float64 {
		cc, _ := colorful.MakeColor(c)
		l, _, _ := cc.Lab()
		return l
	}
	d := Darken(c, config.PressedDarken)
	assert.Equal(t, c.A, d.A)
	assert.Less(t, lightness(d), lightness(c))
	assert.Less(t, lightness(Darken(c, 0.5)), lightness(d))
}
