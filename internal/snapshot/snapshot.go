// Package snapshot renders a single ripple frame to a file without a window.
package snapshot

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go-ripple-toggle/internal/config"
	"go-ripple-toggle/internal/ripple"
	"go-ripple-toggle/pkg/render"
)

// Options — что и куда рисовать.
type Options struct {
	Ripple config.Options
	At     time.Duration // время с момента появления кольца
	Format string        // svg | png, пусто — по расширению Out
	Out    string        // путь, "-" — stdout (только svg)
	Size   int
}

// DefaultOptions renders 300ms into the default animation.
func DefaultOptions() Options {
	return Options{
		Ripple: config.DefaultOptions(),
		At:     300 * time.Millisecond,
		Size:   config.SnapshotSize,
	}
}

var stdout io.Writer = os.Stdout

// Run evaluates one frame and writes it in the requested format.
func Run(so Options) error {
	if err := so.Ripple.Validate(); err != nil {
		return err
	}
	if so.Size <= 0 {
		return fmt.Errorf("size must be positive, got %d", so.Size)
	}
	if so.At < 0 {
		return fmt.Errorf("--at must not be negative, got %s", so.At)
	}

	format := strings.ToLower(so.Format)
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(so.Out)), ".")
	}

	spec := ripple.NewAnimationSpec(so.Ripple)
	frame, _ := spec.At(so.At)
	scene := render.Scene{
		Size:    so.Size,
		Frame:   frame,
		Feather: spec.Feather,
		Active:  true,
		Palette: render.DefaultPalette(),
	}

	switch format {
	case "svg":
		if so.Out == "-" {
			return render.WriteSVG(stdout, scene)
		}
		f, err := os.Create(so.Out)
		if err != nil {
			return fmt.Errorf("create %s: %w", so.Out, err)
		}
		defer f.Close()
		return render.WriteSVG(f, scene)
	case "png":
		if so.Out == "-" {
			return fmt.Errorf("png output needs a file path")
		}
		return render.SaveImage(so.Out, scene)
	default:
		return fmt.Errorf("unknown format %q, want svg or png", format)
	}
}
