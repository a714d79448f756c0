// Package sketch draws diagrams of a computed layout: the viewfinder, the
// placed preview surface and the scanning frame.
package sketch

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	"github.com/menta2k/viewfinder/internal/utils"
	"github.com/menta2k/viewfinder/pkg/framing"
	"github.com/menta2k/viewfinder/pkg/types"
)

var (
	background = color.NRGBA{32, 32, 32, 255}
	surfaceCol = color.NRGBA{96, 96, 96, 255}
	viewCol    = color.NRGBA{0, 170, 255, 255} // viewfinder outline
	frameCol   = color.NRGBA{255, 204, 0, 255} // scanning frame
	centerCol  = color.NRGBA{255, 0, 0, 255}
)

// Options controls the rendered diagram
type Options struct {
	// MaxDim bounds the long side of the output; 0 keeps layout pixels
	MaxDim int
	// Padding around the union of viewfinder and surface, in layout pixels
	Padding int
}

// Draw renders layout. Everything is shifted so that cropped parts of the
// surface (negative offsets) stay visible.
func Draw(layout framing.Layout, opts Options) *image.NRGBA {
	viewfinder := types.RectFromSize(layout.Viewfinder)
	bounds := union(viewfinder, layout.Surface)
	pad := max(opts.Padding, 0)
	dx, dy := pad-bounds.Left, pad-bounds.Top

	canvas := imaging.New(bounds.Width()+2*pad, bounds.Height()+2*pad, background)

	surface := layout.Surface.Offset(dx, dy)
	if !surface.Empty() {
		fill := imaging.New(surface.Width(), surface.Height(), surfaceCol)
		canvas = imaging.Paste(canvas, fill, image.Pt(surface.Left, surface.Top))
	}

	w, h := canvas.Bounds().Dx(), canvas.Bounds().Dy()
	stroke := int(math.Max(2, 0.004*float64(min(w, h))))
	cross := int(math.Max(4, 0.01*float64(min(w, h))))

	drawRect(canvas, viewfinder.Offset(dx, dy), viewCol, stroke)
	drawRect(canvas, layout.Frame.Offset(dx, dy), frameCol, stroke)

	cx, cy := dx+layout.Viewfinder.Width/2, dy+layout.Viewfinder.Height/2
	drawHLine(canvas, cy, cx-cross, cx+cross, centerCol)
	drawVLine(canvas, cx, cy-cross, cy+cross, centerCol)

	if opts.MaxDim > 0 && (w > opts.MaxDim || h > opts.MaxDim) {
		canvas = imaging.Fit(canvas, opts.MaxDim, opts.MaxDim, imaging.Lanczos)
	}
	return canvas
}

// Save writes img to path as png, jpg or webp, chosen by the path's
// extension unless format is set.
func Save(img image.Image, path, format string, quality int, lossless bool) error {
	if format == "" {
		format = utils.GetFileExtension(path)
	}
	if err := utils.EnsureDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	switch strings.ToLower(format) {
	case "webp":
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		opts := &webp.Options{Lossless: lossless, Quality: float32(quality)}
		return webp.Encode(f, img, opts)
	case "png":
		return imaging.Save(img, path)
	case "jpg", "jpeg", "":
		return imaging.Save(img, path, imaging.JPEGQuality(quality))
	default:
		return fmt.Errorf("unsupported sketch format: %s", format)
	}
}

func union(a, b types.Rect) types.Rect {
	if b.Empty() {
		return a
	}
	return types.NewRect(min(a.Left, b.Left), min(a.Top, b.Top), max(a.Right, b.Right), max(a.Bottom, b.Bottom))
}

func drawRect(img *image.NRGBA, r types.Rect, c color.NRGBA, stroke int) {
	if r.Empty() {
		return
	}
	for s := 0; s < stroke; s++ {
		drawHLine(img, r.Top+s, r.Left, r.Right, c)
		drawHLine(img, r.Bottom-1-s, r.Left, r.Right, c)
		drawVLine(img, r.Left+s, r.Top, r.Bottom, c)
		drawVLine(img, r.Right-1-s, r.Top, r.Bottom, c)
	}
}

func drawHLine(img *image.NRGBA, y, x0, x1 int, c color.NRGBA) {
	b := img.Bounds()
	if y < 0 || y >= b.Dy() {
		return
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	x0, x1 = max(x0, 0), min(x1, b.Dx())
	for x := x0; x < x1; x++ {
		img.SetNRGBA(x, y, c)
	}
}

func drawVLine(img *image.NRGBA, x, y0, y1 int, c color.NRGBA) {
	b := img.Bounds()
	if x < 0 || x >= b.Dx() {
		return
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	y0, y1 = max(y0, 0), min(y1, b.Dy())
	for y := y0; y < y1; y++ {
		img.SetNRGBA(x, y, c)
	}
}
