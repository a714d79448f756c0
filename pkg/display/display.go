// Package display relates the camera's natural orientation to the current
// display and chooses preview sizes for a viewfinder.
package display

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/menta2k/viewfinder/pkg/scaling"
	"github.com/menta2k/viewfinder/pkg/types"
)

var (
	// ErrInvalidRotation is returned for display rotations other than 0, 90, 180 and 270
	ErrInvalidRotation = errors.New("display rotation must be 0, 90, 180 or 270")

	// ErrInvalidViewfinder is returned when the viewfinder has a non-positive dimension
	ErrInvalidViewfinder = errors.New("viewfinder size must be positive")
)

// Facing is the direction a camera points
type Facing int

const (
	FacingBack Facing = iota
	FacingFront
)

func (f Facing) String() string {
	if f == FacingFront {
		return "front"
	}
	return "back"
}

// ParseFacing parses "front" or "back"
func ParseFacing(v string) (Facing, error) {
	switch v {
	case "back", "":
		return FacingBack, nil
	case "front":
		return FacingFront, nil
	}
	return FacingBack, fmt.Errorf("unknown camera facing %q", v)
}

// Configuration describes the display a preview is shown on
type Configuration struct {
	// Rotation of the display in degrees
	Rotation int
	// Viewfinder is the size of the preview area in current display orientation
	Viewfinder types.Size
	// Strategy places and scores previews; CenterCrop when nil
	Strategy scaling.Strategy
}

// New creates a Configuration using the CenterCrop strategy
func New(rotation int, viewfinder types.Size) Configuration {
	return Configuration{Rotation: rotation, Viewfinder: viewfinder, Strategy: scaling.CenterCrop{}}
}

// Validate checks rotation and viewfinder size
func (c Configuration) Validate() error {
	if _, err := rotationDegrees(c.Rotation); err != nil {
		return err
	}
	if !c.Viewfinder.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidViewfinder, c.Viewfinder)
	}
	return nil
}

func (c Configuration) strategy() scaling.Strategy {
	if c.Strategy == nil {
		return scaling.CenterCrop{}
	}
	return c.Strategy
}

// StrategyName returns the name of the strategy in use
func (c Configuration) StrategyName() string {
	return c.strategy().Name()
}

// BestPreviewSize chooses among sizes given in natural camera orientation.
// isRotated is true when the camera is perpendicular to the display.
func (c Configuration) BestPreviewSize(sizes []types.Size, isRotated bool) (types.Size, error) {
	desired := c.Viewfinder
	if isRotated {
		desired = desired.Rotate()
	}
	return scaling.BestPreviewSize(c.strategy(), sizes, desired)
}

// ScalePreview places a preview, given in current display orientation,
// relative to the viewfinder.
func (c Configuration) ScalePreview(preview types.Size) types.Rect {
	return c.strategy().ScalePreview(preview, c.Viewfinder)
}

func rotationDegrees(rotation int) (int, error) {
	switch rotation {
	case 0, 90, 180, 270:
		return rotation, nil
	}
	return 0, fmt.Errorf("%w: got %d", ErrInvalidRotation, rotation)
}

// CameraRotation returns the clockwise rotation, in degrees, to apply to
// camera frames so they appear upright on a display rotated by
// displayRotation. Front cameras are compensated for mirroring.
func CameraRotation(displayRotation, sensorOrientation int, facing Facing) (int, error) {
	degrees, err := rotationDegrees(displayRotation)
	if err != nil {
		return 0, err
	}

	var result int
	if facing == FacingFront {
		result = (sensorOrientation + degrees) % 360
		result = (360 - result) % 360
	} else {
		result = (sensorOrientation - degrees + 360) % 360
	}
	slog.Debug("camera display orientation",
		slog.Int("display_rotation", displayRotation),
		slog.Int("sensor_orientation", sensorOrientation),
		slog.String("facing", facing.String()),
		slog.Int("result", result),
	)
	return result, nil
}

// IsRotated reports whether the camera is perpendicular to the display
func IsRotated(cameraRotation int) bool {
	return cameraRotation%180 != 0
}

// PreviewSizeInDisplay converts a preview size from natural camera
// orientation to current display orientation.
func PreviewSizeInDisplay(natural types.Size, cameraRotation int) types.Size {
	if IsRotated(cameraRotation) {
		return natural.Rotate()
	}
	return natural
}
