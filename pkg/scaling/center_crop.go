package scaling

import "github.com/menta2k/viewfinder/pkg/types"

// CenterCropName is the configuration name of CenterCrop
const CenterCropName = "center-crop"

// CenterCrop scales the preview so that both dimensions are greater than or
// equal to the viewfinder's, then centers it. One of width or height fits
// exactly and the excess is cropped. Aspect ratio is preserved.
//
// CenterCrop does not score sizes; selection with it keeps the first
// candidate offered.
type CenterCrop struct{}

// Name implements Strategy
func (CenterCrop) Name() string { return CenterCropName }

// ScalePreview scales the preview to cover the viewfinder, then centers it
func (CenterCrop) ScalePreview(preview, viewfinder types.Size) types.Rect {
	scaled := preview.ScaleCrop(viewfinder)
	logPlacement(CenterCropName, preview, scaled, viewfinder)
	return centered(scaled, viewfinder)
}
