// internal/config/config.go
package config

import (
	"fmt"
	"image/color"
	"time"
)

const (
	ScreenWidth  = 900
	ScreenHeight = 900
	MaxDeltaTime = 0.06

	ClickCooldown = 120 // мс, защита от дребезга
	PressedDarken = 0.25

	ToggleRadius     = 42.0
	ToggleStrokeSize = 2.0

	DebugSwitchX      = 40
	DebugSwitchY      = 40
	DebugSwitchRadius = 14.0

	// Геометрия градиента, в процентах от радиуса
	FeatherWidth     = 10.0
	InitialRingWidth = 4.0
	FinalRingWidth   = 40.0

	InitialScale   = 0.05 // почти ноль
	FinalScale     = 8.0  // ~8 диаметров кнопки
	InitialOpacity = 0.9
	GhostOpacity   = 0.2

	// Непрозрачность самого кольца по ключевым кадрам (0, 0.5, 1),
	// умножается на общее затухание.
	RingOpacityStart = 0.7
	RingOpacityMid   = 0.7
	RingOpacityEnd   = 0.5

	TweenDuration = 700 * time.Millisecond

	// cubic-bezier(0.25, 0.1, 0.25, 1), CSS "ease"
	EaseX1, EaseY1 = 0.25, 0.1
	EaseX2, EaseY2 = 0.25, 1.0

	// Пружина: k, c, m
	SpringStiffness = 100.0
	SpringDamping   = 20.0
	SpringMass      = 1.0
	SpringFPS       = 60
	SpringEpsilon   = 1e-3
	SpringMaxTime   = 3 * time.Second

	RasterSize   = 256 // сторона текстуры одного кольца
	SnapshotSize = 512
)

var (
	BackgroundColor  = color.RGBA{18, 18, 28, 255}
	RippleColor      = color.RGBA{14, 165, 233, 255} // sky-500
	RippleLightColor = color.RGBA{56, 189, 248, 255} // sky-400
	RippleDarkColor  = color.RGBA{3, 105, 161, 255}  // sky-700
	DebugRingColor   = color.RGBA{143, 0, 255, 255} // violet
	DebugBorderColor = color.RGBA{255, 191, 0, 255} // amber
	ToggleOnColor    = color.RGBA{70, 130, 180, 255}
	ToggleOffColor   = color.RGBA{60, 60, 75, 255}
	ToggleStroke     = color.RGBA{240, 240, 240, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
)

// Options — параметры запуска, заполняются флагами командной строки.
type Options struct {
	Debug     bool
	RingWidth float64
	Feather   float64
	Spring    bool
	Stiffness float64
	Damping   float64
	Mass      float64
	Duration  time.Duration
	Verbose   bool
}

// DefaultOptions returns options filled from the constants above.
func DefaultOptions() Options {
	return Options{
		RingWidth: FinalRingWidth,
		Feather:   FeatherWidth,
		Stiffness: SpringStiffness,
		Damping:   SpringDamping,
		Mass:      SpringMass,
		Duration:  TweenDuration,
	}
}

// Validate rejects values that would make the animation meaningless.
func (o Options) Validate() error {
	if o.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %s", o.Duration)
	}
	if o.Feather < 0 || o.Feather > 50 {
		return fmt.Errorf("feather must be within [0, 50], got %g", o.Feather)
	}
	if o.Spring && (o.Stiffness <= 0 || o.Mass <= 0 || o.Damping < 0) {
		return fmt.Errorf("invalid spring: stiffness=%g damping=%g mass=%g", o.Stiffness, o.Damping, o.Mass)
	}
	return nil
}
