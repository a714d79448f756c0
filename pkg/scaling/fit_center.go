package scaling

import (
	"math"

	"github.com/menta2k/viewfinder/pkg/types"
)

// FitCenterName is the configuration name of FitCenter
const FitCenterName = "fit-center"

// FitCenter scales the preview so that it fits entirely inside the
// viewfinder, then centers it. One of width or height fits exactly.
// Aspect ratio is preserved.
type FitCenter struct{}

// Name implements Strategy
func (FitCenter) Name() string { return FitCenterName }

// Score penalizes scaling and, much more heavily, cropping.
// Downscaling is treated as slightly better than upscaling.
func (FitCenter) Score(size, desired types.Size) float64 {
	if !size.Valid() {
		return 0
	}
	scaled := size.ScaleFit(desired)
	// aspect ratio is preserved, so one axis is enough
	scaleRatio := float64(scaled.Width) / float64(size.Width)

	var scaleScore float64
	if scaleRatio > 1 {
		scaleScore = math.Pow(1/scaleRatio, 1.1)
	} else {
		scaleScore = scaleRatio
	}

	// 1.0 means no cropping
	cropRatio := (float64(desired.Width) / float64(scaled.Width)) *
		(float64(desired.Height) / float64(scaled.Height))
	cropScore := 1 / (cropRatio * cropRatio * cropRatio)

	return scaleScore * cropScore
}

// ScalePreview scales the preview to fit the viewfinder, then centers it
func (FitCenter) ScalePreview(preview, viewfinder types.Size) types.Rect {
	scaled := preview.ScaleFit(viewfinder)
	logPlacement(FitCenterName, preview, scaled, viewfinder)
	return centered(scaled, viewfinder)
}
