// Package viewfinder chooses camera preview resolutions for a barcode
// scanner's viewfinder and works out where the scaled preview and the
// scanning frame go.
//
// Basic usage:
//
//	vf := viewfinder.New(
//		display.New(0, types.NewSize(1080, 1920)),
//		framing.DefaultOptions(),
//	)
//	vf.SetCameraRotation(90)
//
//	layout, err := vf.Configure([]types.Size{{1920, 1080}, {1280, 720}, {640, 480}})
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(layout.Surface, layout.Frame, layout.PreviewFrame)
//
// The package consists of these components:
//
//  1. Types (pkg/types): Size with fit/crop scaling, and Rect
//  2. Scaling (pkg/scaling): CenterCrop, FitCenter and FitXY strategies and
//     score-based preview size selection
//  3. Display (pkg/display): rotation handling between camera and display
//  4. Framing (pkg/framing): the scanning frame in viewfinder and preview
//     coordinates
//
// Every computation is a pure function of its inputs and safe to call
// concurrently.
package viewfinder

import (
	"fmt"

	"github.com/menta2k/viewfinder/internal/config"
	"github.com/menta2k/viewfinder/pkg/display"
	"github.com/menta2k/viewfinder/pkg/framing"
	"github.com/menta2k/viewfinder/pkg/scaling"
	"github.com/menta2k/viewfinder/pkg/types"
)

// Version of the viewfinder library
const Version = "1.0.0"

// Viewfinder ties a display configuration, a camera rotation and framing
// options together
type Viewfinder struct {
	display        display.Configuration
	framing        framing.Options
	cameraRotation int
}

// New creates a Viewfinder for a camera aligned with the display
func New(dc display.Configuration, opts framing.Options) *Viewfinder {
	return &Viewfinder{display: dc, framing: opts}
}

// FromConfig creates a Viewfinder from application configuration
func FromConfig(cfg *config.Config) (*Viewfinder, error) {
	dc, err := cfg.DisplayConfiguration()
	if err != nil {
		return nil, fmt.Errorf("invalid display configuration: %w", err)
	}
	rotation, err := cfg.CameraRotation()
	if err != nil {
		return nil, fmt.Errorf("invalid camera configuration: %w", err)
	}
	vf := New(dc, cfg.FramingOptions())
	vf.SetCameraRotation(rotation)
	return vf, nil
}

// SetCameraRotation sets the camera rotation relative to the display, in degrees
func (v *Viewfinder) SetCameraRotation(degrees int) {
	v.cameraRotation = degrees
}

// CameraRotation returns the camera rotation relative to the display
func (v *Viewfinder) CameraRotation() int {
	return v.cameraRotation
}

// Display returns the display configuration
func (v *Viewfinder) Display() display.Configuration {
	return v.display
}

// BestPreviewSize picks among sizes in natural camera orientation
func (v *Viewfinder) BestPreviewSize(sizes []types.Size) (types.Size, error) {
	return v.display.BestPreviewSize(sizes, display.IsRotated(v.cameraRotation))
}

// Rank scores sizes, in natural camera orientation, best first
func (v *Viewfinder) Rank(sizes []types.Size) []scaling.Candidate {
	return scaling.Rank(v.strategy(), sizes, v.desired())
}

// ScalePreview places a preview given in current display orientation
func (v *Viewfinder) ScalePreview(preview types.Size) types.Rect {
	return v.display.ScalePreview(preview)
}

// Layout computes placement and framing for a preview in natural camera orientation
func (v *Viewfinder) Layout(natural types.Size) (framing.Layout, error) {
	preview := display.PreviewSizeInDisplay(natural, v.cameraRotation)
	return framing.Compute(v.display, preview, v.framing)
}

// Configure selects the best of sizes and lays it out
func (v *Viewfinder) Configure(sizes []types.Size) (framing.Layout, error) {
	best, err := v.BestPreviewSize(sizes)
	if err != nil {
		return framing.Layout{}, err
	}
	return v.Layout(best)
}

// Score rates one candidate, in natural camera orientation, with the
// configured strategy
func (v *Viewfinder) Score(size types.Size) float64 {
	return scaling.ScoreOf(v.strategy(), size, v.desired())
}

// desired is the viewfinder in natural camera orientation
func (v *Viewfinder) desired() types.Size {
	if display.IsRotated(v.cameraRotation) {
		return v.display.Viewfinder.Rotate()
	}
	return v.display.Viewfinder
}

func (v *Viewfinder) strategy() scaling.Strategy {
	if v.display.Strategy == nil {
		return scaling.CenterCrop{}
	}
	return v.display.Strategy
}

// GetVersion returns the library version
func GetVersion() string {
	return Version
}
