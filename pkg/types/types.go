package types

import (
	"errors"
	"fmt"
	"image"
	"strconv"
	"strings"
)

// ErrInvalidSize is returned when a size string cannot be parsed
var ErrInvalidSize = errors.New("invalid size")

// Size represents a width/height pair in pixels, either a camera preview
// resolution or the dimensions of a viewfinder
type Size struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// NewSize creates a Size
func NewSize(width, height int) Size {
	return Size{Width: width, Height: height}
}

// Valid reports whether both dimensions are positive
func (s Size) Valid() bool {
	return s.Width > 0 && s.Height > 0
}

// Rotate swaps width and height (a 90 degree rotation)
func (s Size) Rotate() Size {
	return Size{Width: s.Height, Height: s.Width}
}

// Area returns width * height
func (s Size) Area() int {
	return s.Width * s.Height
}

// AspectRatio returns width / height
func (s Size) AspectRatio() float64 {
	return float64(s.Width) / float64(s.Height)
}

// FitsIn reports whether s fits inside other without scaling
func (s Size) FitsIn(other Size) bool {
	return s.Width <= other.Width && s.Height <= other.Height
}

// ScaleFit scales s, preserving aspect ratio, to the largest size that fits
// within into. One dimension matches into exactly.
func (s Size) ScaleFit(into Size) Size {
	if s.Width*into.Height >= into.Width*s.Height {
		// match width
		return Size{Width: into.Width, Height: s.Height * into.Width / s.Width}
	}
	// match height
	return Size{Width: s.Width * into.Height / s.Height, Height: into.Height}
}

// ScaleCrop scales s, preserving aspect ratio, to the smallest size that
// covers into. One dimension matches into exactly.
func (s Size) ScaleCrop(into Size) Size {
	if s.Width*into.Height <= into.Width*s.Height {
		// match width
		return Size{Width: into.Width, Height: s.Height * into.Width / s.Width}
	}
	// match height
	return Size{Width: s.Width * into.Height / s.Height, Height: into.Height}
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// ParseSize parses a size in WxH form, e.g. "1920x1080"
func ParseSize(v string) (Size, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(v)), "x")
	if !ok {
		return Size{}, fmt.Errorf("%w: %q (expected WxH)", ErrInvalidSize, v)
	}
	width, err := strconv.Atoi(strings.TrimSpace(w))
	if err != nil {
		return Size{}, fmt.Errorf("%w: %q: bad width: %v", ErrInvalidSize, v, err)
	}
	height, err := strconv.Atoi(strings.TrimSpace(h))
	if err != nil {
		return Size{}, fmt.Errorf("%w: %q: bad height: %v", ErrInvalidSize, v, err)
	}
	return Size{Width: width, Height: height}, nil
}

// ParseSizes parses a list of WxH strings
func ParseSizes(values []string) ([]Size, error) {
	sizes := make([]Size, 0, len(values))
	for _, v := range values {
		s, err := ParseSize(v)
		if err != nil {
			return nil, err
		}
		sizes = append(sizes, s)
	}
	return sizes, nil
}

// Rect is an axis-aligned rectangle relative to the viewfinder origin.
// Offsets may be negative when the placed preview is cropped.
type Rect struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
}

// NewRect creates a Rect from its edges
func NewRect(left, top, right, bottom int) Rect {
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// RectFromSize returns the rect (0, 0, width, height)
func RectFromSize(s Size) Rect {
	return Rect{Right: s.Width, Bottom: s.Height}
}

// Width returns the horizontal extent
func (r Rect) Width() int {
	return r.Right - r.Left
}

// Height returns the vertical extent
func (r Rect) Height() int {
	return r.Bottom - r.Top
}

// Size returns the rect's width and height
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// Empty reports whether the rect encloses no area
func (r Rect) Empty() bool {
	return r.Left >= r.Right || r.Top >= r.Bottom
}

// Offset translates the rect by dx, dy
func (r Rect) Offset(dx, dy int) Rect {
	return Rect{Left: r.Left + dx, Top: r.Top + dy, Right: r.Right + dx, Bottom: r.Bottom + dy}
}

// Inset shrinks the rect by dx on the left and right and dy on the top and bottom
func (r Rect) Inset(dx, dy int) Rect {
	return Rect{Left: r.Left + dx, Top: r.Top + dy, Right: r.Right - dx, Bottom: r.Bottom - dy}
}

// Intersect returns the overlap of r and other. The second return value is
// false when they do not overlap, in which case r is returned unchanged.
func (r Rect) Intersect(other Rect) (Rect, bool) {
	out := Rect{
		Left:   max(r.Left, other.Left),
		Top:    max(r.Top, other.Top),
		Right:  min(r.Right, other.Right),
		Bottom: min(r.Bottom, other.Bottom),
	}
	if out.Empty() {
		return r, false
	}
	return out, true
}

// Image converts the rect to an image.Rectangle
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.Left, r.Top, r.Right, r.Bottom)
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect(%d, %d - %d, %d)", r.Left, r.Top, r.Right, r.Bottom)
}
