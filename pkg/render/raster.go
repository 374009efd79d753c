package render

import (
	"image"
	"image/color"
	"math"

	"go-ripple-toggle/internal/ripple"
	"go-ripple-toggle/internal/utils"
)

// Sample returns the premultiplied color of the gradient at offset d
// (percent of radius). Equal offsets form a hard step: the later stop wins.
func Sample(stops []ripple.Stop, d float64) color.RGBA {
	if len(stops) == 0 {
		return color.RGBA{}
	}
	first, last := stops[0], stops[len(stops)-1]
	if d < first.Offset {
		return premultiply(first.Color, utils.Clamp01(first.Opacity))
	}
	if d >= last.Offset {
		return premultiply(last.Color, utils.Clamp01(last.Opacity))
	}

	i := 0
	for j := range stops {
		if stops[j].Offset <= d {
			i = j
		}
	}
	a, b := stops[i], stops[i+1]
	t := (d - a.Offset) / (b.Offset - a.Offset)
	opacity := utils.Clamp01(utils.Lerp(a.Opacity, b.Opacity, t))
	return premultiply(blend(a.Color, b.Color, t), opacity)
}

// Rasterize заполняет dst радиальным градиентом, вписанным в его границы.
// Всё, что дальше радиуса, прозрачно.
func Rasterize(dst *image.RGBA, stops []ripple.Stop) {
	b := dst.Bounds()
	w, h := b.Dx(), b.Dy()
	radius := math.Min(float64(w), float64(h)) / 2
	if radius <= 0 {
		return
	}
	cx := float64(b.Min.X) + float64(w)/2
	cy := float64(b.Min.Y) + float64(h)/2

	// Таблица по радиусу: градиент считается один раз на пиксель радиуса.
	lut := make([]color.RGBA, int(math.Ceil(radius))+1)
	for i := range lut {
		lut[i] = Sample(stops, float64(i)/radius*100)
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dist := math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy)
			if dist > radius {
				dst.SetRGBA(x, y, color.RGBA{})
				continue
			}
			dst.SetRGBA(x, y, lut[int(dist+0.5)])
		}
	}
}

// RasterizeStops allocates a size×size image with the gradient.
func RasterizeStops(size int, stops []ripple.Stop) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	Rasterize(img, stops)
	return img
}
