// internal/ui/ripple_layer.go
package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"go-ripple-toggle/internal/ripple"
	"go-ripple-toggle/pkg/render"
)

// RippleLayer рисует все активные кольца драйвера. На каждый ripple —
// своя текстура, пересчитываемая каждый кадр.
type RippleLayer struct {
	driver *ripple.Driver
	size   int
	buf    *image.RGBA
	images map[ripple.ID]*ebiten.Image
}

func NewRippleLayer(driver *ripple.Driver, size int) *RippleLayer {
	return &RippleLayer{
		driver: driver,
		size:   size,
		buf:    image.NewRGBA(image.Rect(0, 0, size, size)),
		images: make(map[ripple.ID]*ebiten.Image),
	}
}

// Draw centers every ripple on the anchor; anchor.Radius sets the unit of
// Frame.Scale.
func (l *RippleLayer) Draw(screen *ebiten.Image, anchor ripple.Anchor) {
	live := make(map[ripple.ID]struct{})
	for _, track := range l.driver.Tracks() {
		live[track.ID] = struct{}{}
		diameter := track.Frame.Scale * 2 * anchor.Radius
		if diameter <= 0 {
			continue
		}

		img, ok := l.images[track.ID]
		if !ok {
			img = ebiten.NewImage(l.size, l.size)
			l.images[track.ID] = img
		}
		render.Rasterize(l.buf, track.Stops())
		img.WritePixels(l.buf.Pix)

		half := float64(l.size) / 2
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-half, -half)
		op.GeoM.Scale(diameter/float64(l.size), diameter/float64(l.size))
		op.GeoM.Translate(anchor.X, anchor.Y)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(img, op)
	}

	// Текстуры завершённых колец освобождаем сразу.
	for id, img := range l.images {
		if _, ok := live[id]; !ok {
			img.Deallocate()
			delete(l.images, id)
		}
	}
}

// Release frees every texture, used when the scene is torn down.
func (l *RippleLayer) Release() {
	for id, img := range l.images {
		img.Deallocate()
		delete(l.images, id)
	}
}
