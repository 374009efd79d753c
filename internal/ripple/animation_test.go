package ripple

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-ripple-toggle/internal/config"
)

func TestTweenIsMonotonic(t *testing.T) {
	spec := NewAnimationSpec(config.DefaultOptions())

	prev, settled := spec.At(0)
	assert.False(t, settled)
	assert.Equal(t, spec.Initial, prev)

	for ms := 10; ms <= 700; ms += 10 {
		f, _ := spec.At(time.Duration(ms) * time.Millisecond)
		assert.LessOrEqual(t, f.Gradient.Opacity, prev.Gradient.Opacity)
		assert.GreaterOrEqual(t, f.Gradient.RingWidth, prev.Gradient.RingWidth)
		assert.GreaterOrEqual(t, f.Scale, prev.Scale)
		prev = f
	}

	f, settled := spec.At(config.TweenDuration)
	assert.True(t, settled)
	assert.Equal(t, 0.0, f.Gradient.Opacity)
	assert.Equal(t, config.FinalScale, f.Scale)
	assert.Equal(t, config.FinalRingWidth, f.Gradient.RingWidth)
}

func TestColorKeyframes(t *testing.T) {
	spec := NewAnimationSpec(config.DefaultOptions())
	half := config.TweenDuration / 2

	assert.Equal(t, config.RippleColor, spec.Initial.Gradient.Color)
	assert.Equal(t, config.RingOpacityStart, spec.Initial.Gradient.RingOpacity)

	mid, settled := spec.At(half)
	require.False(t, settled)
	assert.Equal(t, config.RippleLightColor, mid.Gradient.Color)
	assert.Equal(t, config.RingOpacityMid, mid.Gradient.RingOpacity)

	// Between keys the color is an actual blend of both neighbours.
	quarter, _ := spec.At(half / 2)
	assert.NotEqual(t, config.RippleColor, quarter.Gradient.Color)
	assert.NotEqual(t, config.RippleLightColor, quarter.Gradient.Color)
	assert.Greater(t, quarter.Gradient.Color.R, config.RippleColor.R)
	assert.Less(t, quarter.Gradient.Color.R, config.RippleLightColor.R)

	late, _ := spec.At(half + half/2)
	assert.Less(t, late.Gradient.RingOpacity, config.RingOpacityMid)
	assert.Greater(t, late.Gradient.RingOpacity, config.RingOpacityEnd)
	assert.Less(t, late.Gradient.Color.G, config.RippleLightColor.G)

	end, settled := spec.At(config.TweenDuration)
	require.True(t, settled)
	assert.Equal(t, config.RippleDarkColor, end.Gradient.Color)
	assert.Equal(t, config.RingOpacityEnd, end.Gradient.RingOpacity)
}

func TestFadeIsLinearGeometryIsEased(t *testing.T) {
	spec := NewAnimationSpec(config.DefaultOptions())
	f, _ := spec.At(config.TweenDuration / 2)

	assert.InDelta(t, config.InitialOpacity/2, f.Gradient.Opacity, 1e-9)
	want := config.InitialRingWidth + (config.FinalRingWidth-config.InitialRingWidth)*Ease(0.5)
	assert.InDelta(t, want, f.Gradient.RingWidth, 1e-9)
	assert.Greater(t, f.Gradient.RingWidth, (config.InitialRingWidth+config.FinalRingWidth)/2)

	stops := spec.Stops(f)
	assert.InDelta(t, f.Gradient.Opacity*config.RingOpacityMid, stops[2].Opacity, 1e-9)
}

func TestColorTrackEdges(t *testing.T) {
	var empty ColorTrack
	c, op := empty.At(0.3)
	assert.Equal(t, config.RippleColor, c)
	assert.Equal(t, 1.0, op)

	track := DefaultColorTrack()
	c, op = track.At(-1)
	assert.Equal(t, config.RippleColor, c)
	assert.Equal(t, config.RingOpacityStart, op)
	c, op = track.At(1.4)
	assert.Equal(t, config.RippleDarkColor, c)
	assert.Equal(t, config.RingOpacityEnd, op)
}

func TestSpecShape(t *testing.T) {
	spec := NewAnimationSpec(config.DefaultOptions())
	assert.Equal(t, config.InitialOpacity, spec.Initial.Gradient.Opacity)
	assert.Less(t, spec.Initial.Gradient.RingWidth, spec.Final.Gradient.RingWidth)
	assert.Less(t, spec.Initial.Scale, 0.1)
	assert.Equal(t, 8.0, spec.Final.Scale)

	opts := config.DefaultOptions()
	opts.RingWidth = 500
	spec = NewAnimationSpec(opts)
	assert.Equal(t, 80.0, spec.Final.Gradient.RingWidth, "final ring width is clamped")
}

func TestDebugFreezesOpacity(t *testing.T) {
	opts := config.DefaultOptions()
	opts.Debug = true
	opts.RingWidth = 20
	spec := NewAnimationSpec(opts)

	for ms := 0; ms <= 900; ms += 25 {
		f, _ := spec.At(time.Duration(ms) * time.Millisecond)
		assert.Equal(t, 1.0, f.Gradient.Opacity)
		assert.True(t, f.Gradient.Debug)
	}
}

func TestSpringSettles(t *testing.T) {
	s := NewSpring(config.SpringStiffness, config.SpringDamping, config.SpringMass)

	p, settled := s.Progress(0)
	assert.Equal(t, 0.0, p)
	assert.False(t, settled)

	// Critically damped: approaches 1 without overshoot.
	prev := 0.0
	for ms := 50; ms < 1000; ms += 50 {
		p, _ := s.Progress(time.Duration(ms) * time.Millisecond)
		assert.GreaterOrEqual(t, p, prev)
		assert.LessOrEqual(t, p, 1.0)
		prev = p
	}

	p, settled = s.Progress(2 * time.Second)
	assert.True(t, settled)
	assert.Equal(t, 1.0, p)
}

func TestSpringIsBounded(t *testing.T) {
	// Almost undamped: only the hard cap ends it.
	s := NewSpring(100, 0.01, 1)
	_, settled := s.Progress(config.SpringMaxTime - time.Millisecond)
	assert.False(t, settled)
	p, settled := s.Progress(config.SpringMaxTime)
	assert.True(t, settled)
	assert.Equal(t, 1.0, p)
}

func TestSpringSpecReachesFinal(t *testing.T) {
	opts := config.DefaultOptions()
	opts.Spring = true
	spec := NewAnimationSpec(opts)

	f, settled := spec.At(config.SpringMaxTime)
	assert.True(t, settled)
	assert.Equal(t, spec.Final, f)
}
