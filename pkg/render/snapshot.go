package render

import (
	"fmt"
	"image"
	"io"
	"math"
	"strconv"

	svg "github.com/ajstarks/svgo"
	"github.com/disintegration/imaging"

	"go-ripple-toggle/internal/config"
	"go-ripple-toggle/internal/ripple"
)

// Scene — один кадр для экспорта: кольцо поверх кнопки.
type Scene struct {
	Size    int
	Frame   ripple.Frame
	Feather float64
	Active  bool
	Palette Palette
}

// DefaultPalette takes the colors from config.
func DefaultPalette() Palette {
	return Palette{
		Background: config.BackgroundColor,
		ToggleOn:   config.ToggleOnColor,
		ToggleOff:  config.ToggleOffColor,
		Guide:      config.DebugBorderColor,
	}
}

// Кнопка занимает 1/FinalScale холста, так что полностью раскрытое кольцо
// вписано в холст.
func (s Scene) toggleRadius() float64 {
	return float64(s.Size) / (2 * config.FinalScale)
}

func (s Scene) rippleRadius() float64 {
	return s.Frame.Scale * s.toggleRadius()
}

func (s Scene) stops() []ripple.Stop {
	return ripple.Stops(s.Frame.Gradient, s.Feather)
}

func (s Scene) toggleColor() string {
	if s.Active {
		return CSSColor(s.Palette.ToggleOn)
	}
	return CSSColor(s.Palette.ToggleOff)
}

// WriteSVG пишет кадр как SVG с <radialGradient>. В режиме отладки поверх
// рисуются пунктирные окружности на границах полос.
func WriteSVG(w io.Writer, s Scene) error {
	if s.Size <= 0 {
		return fmt.Errorf("invalid snapshot size %d", s.Size)
	}
	c := s.Size / 2
	r := int(math.Round(s.rippleRadius()))

	canvas := svg.New(w)
	canvas.Start(s.Size, s.Size)
	canvas.Title("ripple")
	canvas.Rect(0, 0, s.Size, s.Size, "fill:"+CSSColor(s.Palette.Background))
	canvas.Def()
	writeRadialGradient(canvas, "ripple", s.stops())
	canvas.DefEnd()
	if r > 0 {
		canvas.Circle(c, c, r, "fill:url(#ripple)")
	}
	if s.Frame.Gradient.Debug && r > 0 {
		guide := "fill:none;stroke-width:1;stroke-dasharray:4 3;stroke:" + CSSColor(s.Palette.Guide)
		inner, outer := ripple.RingBand(s.Frame.Gradient.RingWidth, s.Feather)
		for _, off := range []float64{inner, outer} {
			canvas.Circle(c, c, int(math.Round(float64(r)*off/100)), guide)
		}
	}
	canvas.Circle(c, c, int(math.Round(s.toggleRadius())), "fill:"+s.toggleColor())
	canvas.End()
	return nil
}

// writeRadialGradient пишет <radialGradient> вручную: svg.Offcolor хранит
// смещение как uint8, а кольцо в середине анимации имеет дробные границы.
func writeRadialGradient(canvas *svg.SVG, id string, stops []ripple.Stop) {
	fmt.Fprintf(canvas.Writer, `<radialGradient id="%s" cx="50%%" cy="50%%" r="50%%" fx="50%%" fy="50%%">`+"\n", id)
	for _, st := range stops {
		fmt.Fprintf(canvas.Writer, `<stop offset="%s%%" stop-color="%s" stop-opacity="%s"/>`+"\n",
			formatFloat(st.Offset), CSSColor(st.Color), formatFloat(st.Opacity))
	}
	fmt.Fprintln(canvas.Writer, "</radialGradient>")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// RenderImage rasterizes the scene. The ripple is composited over the
// background, then the toggle on top.
func RenderImage(s Scene) (*image.NRGBA, error) {
	if s.Size <= 0 {
		return nil, fmt.Errorf("invalid snapshot size %d", s.Size)
	}
	canvas := imaging.New(s.Size, s.Size, s.Palette.Background)
	center := float64(s.Size) / 2

	if side := int(math.Round(2 * s.rippleRadius())); side > 0 {
		ring := RasterizeStops(side, s.stops())
		at := int(math.Round(center - float64(side)/2))
		canvas = imaging.Overlay(canvas, ring, image.Pt(at, at), 1.0)
	}

	toggleColor := s.Palette.ToggleOff
	if s.Active {
		toggleColor = s.Palette.ToggleOn
	}
	side := int(math.Round(2 * s.toggleRadius()))
	disk := RasterizeStops(side, []ripple.Stop{
		{Offset: 0, Color: toggleColor, Opacity: 1},
		{Offset: 100, Color: toggleColor, Opacity: 1},
	})
	at := int(math.Round(center - float64(side)/2))
	return imaging.Overlay(canvas, disk, image.Pt(at, at), 1.0), nil
}

// SaveImage renders the scene and writes it to path; the format follows the
// file extension.
func SaveImage(path string, s Scene) error {
	img, err := RenderImage(s)
	if err != nil {
		return err
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("save snapshot %s: %w", path, err)
	}
	return nil
}
