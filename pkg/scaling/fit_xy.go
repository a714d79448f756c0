package scaling

import "github.com/menta2k/viewfinder/pkg/types"

// FitXYName is the configuration name of FitXY
const FitXYName = "fit-xy"

// FitXY stretches the preview to exactly fill the viewfinder.
// Aspect ratio is NOT preserved.
type FitXY struct{}

// Name implements Strategy
func (FitXY) Name() string { return FitXYName }

// absRatio folds a ratio to >= 1 so that 0.5 and 2 are the same mismatch
func absRatio(ratio float64) float64 {
	if ratio < 1 {
		return 1 / ratio
	}
	return ratio
}

// Score penalizes scale mismatch on either axis and, cubically, distortion
// of the aspect ratio.
func (FitXY) Score(size, desired types.Size) float64 {
	if !size.Valid() {
		return 0
	}
	scaleX := absRatio(float64(size.Width) / float64(desired.Width))
	scaleY := absRatio(float64(size.Height) / float64(desired.Height))
	scaleScore := 1 / (scaleX * scaleY)

	// distortion is bad
	distortion := absRatio(size.AspectRatio() / desired.AspectRatio())
	distortionScore := 1 / (distortion * distortion * distortion)

	return scaleScore * distortionScore
}

// ScalePreview ignores the preview size and fills the viewfinder
func (FitXY) ScalePreview(_, viewfinder types.Size) types.Rect {
	return types.RectFromSize(viewfinder)
}
