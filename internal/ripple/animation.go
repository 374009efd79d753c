package ripple

import (
	"image/color"
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/lucasb-eyer/go-colorful"

	"go-ripple-toggle/internal/config"
	"go-ripple-toggle/internal/utils"
)

// Frame — визуальное состояние ripple в один момент времени.
// Scale — диаметр кольца в диаметрах кнопки.
type Frame struct {
	Gradient GradientConfig
	Scale    float64
}

// Interpolator maps elapsed time to animation progress. Progress starts at 0
// and ends exactly at 1 once settled is reported.
type Interpolator interface {
	Progress(elapsed time.Duration) (p float64, settled bool)
}

// Tween — фиксированная длительность с easing.
type Tween struct {
	Duration time.Duration
	Ease     func(float64) float64
}

// Ease is the default tween curve, CSS "ease".
var Ease = utils.CubicBezier(config.EaseX1, config.EaseY1, config.EaseX2, config.EaseY2)

func NewTween(d time.Duration) Tween {
	return Tween{Duration: d, Ease: Ease}
}

func (tw Tween) Progress(elapsed time.Duration) (float64, bool) {
	if tw.Duration <= 0 || elapsed >= tw.Duration {
		return 1, true
	}
	ease := tw.Ease
	if ease == nil {
		ease = Ease
	}
	return ease(tw.Fraction(elapsed)), false
}

// Fraction — доля прошедшего времени без easing. По ней линейно идёт
// затухание и ключевые кадры цвета.
func (tw Tween) Fraction(elapsed time.Duration) float64 {
	if tw.Duration <= 0 {
		return 1
	}
	return utils.Clamp01(float64(elapsed) / float64(tw.Duration))
}

// Spring — затухающая пружина от 0 к 1. Траектория пересчитывается с нуля
// на каждый вызов, поэтому Progress не хранит состояния.
type Spring struct {
	spring  harmonica.Spring
	fps     int
	epsilon float64
	maxTime time.Duration
}

// NewSpring переводит жёсткость k, демпфирование c и массу m в параметры
// harmonica: угловую частоту sqrt(k/m) и коэффициент затухания c/(2*sqrt(k*m)).
func NewSpring(stiffness, damping, mass float64) Spring {
	freq := math.Sqrt(stiffness / mass)
	ratio := damping / (2 * math.Sqrt(stiffness*mass))
	return Spring{
		spring:  harmonica.NewSpring(harmonica.FPS(config.SpringFPS), freq, ratio),
		fps:     config.SpringFPS,
		epsilon: config.SpringEpsilon,
		maxTime: config.SpringMaxTime,
	}
}

func (s Spring) Progress(elapsed time.Duration) (float64, bool) {
	if elapsed >= s.maxTime {
		return 1, true
	}
	if elapsed <= 0 {
		return 0, false
	}
	steps := int(elapsed.Seconds() * float64(s.fps))
	pos, vel := 0.0, 0.0
	for i := 0; i < steps; i++ {
		pos, vel = s.spring.Update(pos, vel, 1)
	}
	if math.Abs(1-pos) < s.epsilon && math.Abs(vel) < s.epsilon {
		return 1, true
	}
	return pos, false
}

// fractioner is implemented by interpolators with a fixed timeline.
type fractioner interface {
	Fraction(elapsed time.Duration) float64
}

// ColorKey — ключевой кадр цвета кольца. At — доля времени в [0, 1].
type ColorKey struct {
	At          float64
	Color       color.RGBA
	RingOpacity float64
}

// ColorTrack interpolates the ring color and ring opacity between keys.
// Каждый отрезок между ключами проходится со своим easing.
type ColorTrack struct {
	Keys []ColorKey
	Ease func(float64) float64
}

// DefaultColorTrack: sky-500 → sky-400 → sky-700, кольцо 0.7 → 0.7 → 0.5.
func DefaultColorTrack() ColorTrack {
	return ColorTrack{
		Keys: []ColorKey{
			{At: 0, Color: config.RippleColor, RingOpacity: config.RingOpacityStart},
			{At: 0.5, Color: config.RippleLightColor, RingOpacity: config.RingOpacityMid},
			{At: 1, Color: config.RippleDarkColor, RingOpacity: config.RingOpacityEnd},
		},
		Ease: Ease,
	}
}

// At returns the color and ring opacity at time fraction f.
func (c ColorTrack) At(f float64) (color.RGBA, float64) {
	if len(c.Keys) == 0 {
		return config.RippleColor, 1
	}
	first, last := c.Keys[0], c.Keys[len(c.Keys)-1]
	if f <= first.At {
		return first.Color, first.RingOpacity
	}
	if f >= last.At {
		return last.Color, last.RingOpacity
	}

	i := 0
	for j := range c.Keys {
		if c.Keys[j].At <= f {
			i = j
		}
	}
	a, b := c.Keys[i], c.Keys[i+1]
	t := (f - a.At) / (b.At - a.At)
	if c.Ease != nil {
		t = c.Ease(t)
	}
	return lerpColor(a.Color, b.Color, t), utils.Clamp01(utils.Lerp(a.RingOpacity, b.RingOpacity, t))
}

// AnimationSpec — траектория одного ripple от появления до исчезновения.
// После создания не меняется.
type AnimationSpec struct {
	Initial Frame
	Final   Frame
	Colors  ColorTrack
	Feather float64
	Interp  Interpolator
}

// NewAnimationSpec строит траекторию по параметрам запуска. В режиме
// отладки непрозрачность заморожена на 1.
func NewAnimationSpec(opts config.Options) AnimationSpec {
	var interp Interpolator = NewTween(opts.Duration)
	if opts.Spring {
		interp = NewSpring(opts.Stiffness, opts.Damping, opts.Mass)
	}

	initialOpacity, finalOpacity := config.InitialOpacity, 0.0
	if opts.Debug {
		initialOpacity, finalOpacity = 1, 1
	}

	colors := DefaultColorTrack()
	startColor, startRing := colors.At(0)
	endColor, endRing := colors.At(1)

	return AnimationSpec{
		Initial: Frame{
			Gradient: GradientConfig{
				Color:       startColor,
				Opacity:     initialOpacity,
				RingOpacity: startRing,
				RingWidth:   config.InitialRingWidth,
				Debug:       opts.Debug,
			},
			Scale: config.InitialScale,
		},
		Final: Frame{
			Gradient: GradientConfig{
				Color:       endColor,
				Opacity:     finalOpacity,
				RingOpacity: endRing,
				RingWidth:   ClampRingWidth(opts.RingWidth, opts.Feather),
				Debug:       opts.Debug,
			},
			Scale: config.FinalScale,
		},
		Colors:  colors,
		Feather: ClampFeather(opts.Feather),
		Interp:  interp,
	}
}

// At evaluates the trajectory at elapsed time since spawn. Геометрия идёт по
// progress интерполятора, затухание и цвет — линейно по времени (у пружины
// времени нет, там используется тот же progress).
func (a AnimationSpec) At(elapsed time.Duration) (Frame, bool) {
	p, settled := a.Interp.Progress(elapsed)
	if settled {
		return a.Final, true
	}
	frac := utils.Clamp01(p)
	if tf, ok := a.Interp.(fractioner); ok {
		frac = tf.Fraction(elapsed)
	}

	f := lerpFrame(a.Initial, a.Final, p)
	f.Gradient.Opacity = utils.Clamp01(utils.Lerp(a.Initial.Gradient.Opacity, a.Final.Gradient.Opacity, frac))
	f.Gradient.Color, f.Gradient.RingOpacity = a.Colors.At(frac)
	return f, false
}

// Stops is a shortcut for the gradient of a frame under this spec's feather.
func (a AnimationSpec) Stops(f Frame) []Stop {
	return Stops(f.Gradient, a.Feather)
}

func lerpFrame(from, to Frame, p float64) Frame {
	return Frame{
		Gradient: GradientConfig{
			Color:       from.Gradient.Color,
			Opacity:     from.Gradient.Opacity,
			RingOpacity: from.Gradient.RingOpacity,
			RingWidth:   math.Max(0, utils.Lerp(from.Gradient.RingWidth, to.Gradient.RingWidth, p)),
			Debug:       to.Gradient.Debug,
		},
		Scale: math.Max(0, utils.Lerp(from.Scale, to.Scale, p)),
	}
}

// lerpColor смешивает покомпонентно в RGB через go-colorful.
func lerpColor(from, to color.RGBA, p float64) color.RGBA {
	switch {
	case p <= 0:
		return from
	case p >= 1:
		return to
	}
	a, _ := colorful.MakeColor(from)
	b, _ := colorful.MakeColor(to)
	r, g, bl := a.BlendRgb(b, p).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: bl, A: 255}
}
