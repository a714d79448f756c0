// Package framing computes the scanning frame shown over the viewfinder and
// maps it into camera preview pixel coordinates.
package framing

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/menta2k/viewfinder/pkg/display"
	"github.com/menta2k/viewfinder/pkg/types"
)

var (
	// ErrMarginFraction is returned when the margin fraction is outside [0, 0.5)
	ErrMarginFraction = errors.New("margin fraction must be in [0, 0.5)")

	// ErrEdgeFraction is returned when the edge fraction is outside [0, 1]
	ErrEdgeFraction = errors.New("edge fraction must be in [0, 1]")

	// ErrFrameTooSmall is returned when the frame maps to an empty area of the preview
	ErrFrameTooSmall = errors.New("preview frame is too small")

	// ErrNoSurface is returned when the placed preview does not overlap the viewfinder
	ErrNoSurface = errors.New("preview surface is empty")
)

// DefaultMarginFraction is the margin used when neither a size nor an edge
// fraction is configured
const DefaultMarginFraction = 0.1

// Options controls the size of the framing rect. Size takes precedence,
// then EdgeFraction, then MarginFraction.
type Options struct {
	// Size is a fixed frame size, clamped to the visible area
	Size types.Size
	// EdgeFraction makes a square frame of this fraction of the shorter visible edge
	EdgeFraction float64
	// MarginFraction of the shorter visible edge is left on every side
	MarginFraction float64
}

// DefaultOptions returns options with a 10% margin
func DefaultOptions() Options {
	return Options{MarginFraction: DefaultMarginFraction}
}

// Validate checks the fractions
func (o Options) Validate() error {
	if o.MarginFraction < 0 || o.MarginFraction >= 0.5 {
		return fmt.Errorf("%w: got %v", ErrMarginFraction, o.MarginFraction)
	}
	if o.EdgeFraction < 0 || o.EdgeFraction > 1 {
		return fmt.Errorf("%w: got %v", ErrEdgeFraction, o.EdgeFraction)
	}
	return nil
}

// FramingRect calculates the frame within the part of container covered by
// surface.
func FramingRect(container, surface types.Rect, opts Options) types.Rect {
	// the part of the container actually showing the preview
	visible, _ := container.Intersect(surface)
	w, h := visible.Width(), visible.Height()

	if opts.Size.Valid() {
		// not larger than the visible area
		return visible.Inset(max(0, (w-opts.Size.Width)/2), max(0, (h-opts.Size.Height)/2))
	}

	if opts.EdgeFraction > 0 {
		edge := int(opts.EdgeFraction * float64(min(w, h)))
		return visible.Inset(max(0, (w-edge)/2), max(0, (h-edge)/2))
	}

	margin := int(min(float64(w)*opts.MarginFraction, float64(h)*opts.MarginFraction))
	frame := visible.Inset(margin, margin)
	if frame.Height() > frame.Width() {
		// no frames taller than wide
		frame = frame.Inset(0, (frame.Height()-frame.Width())/2)
	}
	return frame
}

// PreviewFramingRect maps frame, in viewfinder coordinates, to the pixels of
// a preview of the given size placed at surface.
func PreviewFramingRect(frame, surface types.Rect, preview types.Size) (types.Rect, error) {
	if surface.Empty() {
		return types.Rect{}, ErrNoSurface
	}
	inPreview := frame.Offset(-surface.Left, -surface.Top)
	sw, sh := surface.Width(), surface.Height()

	out := types.NewRect(
		inPreview.Left*preview.Width/sw,
		inPreview.Top*preview.Height/sh,
		inPreview.Right*preview.Width/sw,
		inPreview.Bottom*preview.Height/sh,
	)
	if out.Width() <= 0 || out.Height() <= 0 {
		return types.Rect{}, fmt.Errorf("%w: %s", ErrFrameTooSmall, out)
	}
	return out, nil
}

// Layout is everything needed to show a preview and decode the framed part
type Layout struct {
	Strategy   string     `json:"strategy"`
	Viewfinder types.Size `json:"viewfinder"`
	Preview    types.Size `json:"preview"`
	// Surface is where the scaled preview is drawn, relative to the viewfinder
	Surface types.Rect `json:"surface"`
	// Frame is the scanning frame in viewfinder coordinates
	Frame types.Rect `json:"frame"`
	// PreviewFrame is Frame in preview pixel coordinates
	PreviewFrame types.Rect `json:"preview_frame"`
}

// Compute places preview using cfg and derives the framing rects.
// preview is in current display orientation.
func Compute(cfg display.Configuration, preview types.Size, opts Options) (Layout, error) {
	if err := cfg.Validate(); err != nil {
		return Layout{}, err
	}
	if err := opts.Validate(); err != nil {
		return Layout{}, err
	}
	if !preview.Valid() {
		return Layout{}, fmt.Errorf("%w: preview %s", types.ErrInvalidSize, preview)
	}

	layout := Layout{
		Strategy:   cfg.StrategyName(),
		Viewfinder: cfg.Viewfinder,
		Preview:    preview,
		Surface:    cfg.ScalePreview(preview),
	}
	layout.Frame = FramingRect(types.RectFromSize(cfg.Viewfinder), layout.Surface, opts)

	previewFrame, err := PreviewFramingRect(layout.Frame, layout.Surface, preview)
	if err != nil {
		slog.Warn("framing failed",
			slog.String("surface", layout.Surface.String()),
			slog.String("frame", layout.Frame.String()),
			slog.Any("error", err),
		)
		return Layout{}, err
	}
	layout.PreviewFrame = previewFrame

	slog.Debug("computed layout",
		slog.String("strategy", layout.Strategy),
		slog.String("surface", layout.Surface.String()),
		slog.String("frame", layout.Frame.String()),
		slog.String("preview_frame", layout.PreviewFrame.String()),
	)
	return layout, nil
}
