package ripple

import (
	"image/color"

	"go-ripple-toggle/internal/config"
	"go-ripple-toggle/internal/utils"
)

// GradientConfig описывает один кадр кольца. Пересчитывается на каждый кадр.
// Opacity — общее затухание ripple, RingOpacity — непрозрачность самой
// полосы по ключевым кадрам. Кольцо рисуется с их произведением.
type GradientConfig struct {
	Color       color.RGBA
	Opacity     float64 // [0, 1]
	RingOpacity float64 // [0, 1]
	RingWidth   float64 // в процентах радиуса
	Debug       bool
}

// RingAlpha is the opacity of the ring band in production mode.
func (g GradientConfig) RingAlpha() float64 {
	return utils.Clamp01(g.Opacity) * utils.Clamp01(g.RingOpacity)
}

// Stop — точка радиального градиента. Offset в процентах радиуса.
// Прозрачные точки несут цвет соседней полосы с нулевой непрозрачностью,
// чтобы перо не темнело при интерполяции.
type Stop struct {
	Offset  float64
	Color   color.RGBA
	Opacity float64
}

// ClampFeather keeps the feather inside [0, 50] so two bands always fit.
func ClampFeather(feather float64) float64 {
	return utils.Clamp(feather, 0, 50)
}

// ClampRingWidth ограничивает ширину кольца отрезком [0, 100 - 2*feather],
// иначе смещения перекрываются.
func ClampRingWidth(width, feather float64) float64 {
	return utils.Clamp(width, 0, 100-2*ClampFeather(feather))
}

// RingBand returns the inner and outer offsets of the opaque ring.
func RingBand(width, feather float64) (inner, outer float64) {
	w := ClampRingWidth(width, feather)
	return 50 - w/2, 50 + w/2
}

// Stops строит упорядоченные точки градиента: прозрачный центр, переход,
// кольцо, переход, прозрачный край. В режиме отладки кольцо фиолетовое, а
// переходы обрамлены янтарными «призрачными» точками с непрозрачностью 0.2.
func Stops(cfg GradientConfig, feather float64) []Stop {
	f := ClampFeather(feather)
	inner, outer := RingBand(cfg.RingWidth, f)

	var stops []Stop
	if !cfg.Debug {
		ring := Stop{Color: cfg.Color, Opacity: cfg.RingAlpha()}
		fade := Stop{Color: cfg.Color}
		stops = []Stop{
			withOffset(fade, 0),
			withOffset(fade, inner-f),
			withOffset(ring, inner),
			withOffset(ring, outer),
			withOffset(fade, outer+f),
			withOffset(fade, 100),
		}
	} else {
		stops = debugStops(inner, outer, f)
	}

	// Погрешность float не должна выводить точки за [0, 100].
	for i := range stops {
		stops[i].Offset = utils.Clamp(stops[i].Offset, 0, 100)
	}
	return stops
}

func debugStops(inner, outer, f float64) []Stop {
	ring := Stop{Color: config.DebugRingColor, Opacity: 1}
	ghost := Stop{Color: config.DebugBorderColor, Opacity: config.GhostOpacity}
	fade := Stop{Color: config.DebugBorderColor}
	return []Stop{
		withOffset(fade, 0),
		withOffset(fade, inner-f),
		withOffset(ghost, inner-f),
		withOffset(ghost, inner),
		withOffset(ring, inner),
		withOffset(ring, outer),
		withOffset(ghost, outer),
		withOffset(ghost, outer+f),
		withOffset(fade, outer+f),
		withOffset(fade, 100),
	}
}

func withOffset(s Stop, offset float64) Stop {
	s.Offset = offset
	return s
}
