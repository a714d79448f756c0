package display

import "github.com/menta2k/viewfinder/pkg/types"

// Transform scales then translates a texture so the preview fills it
// without distortion
type Transform struct {
	ScaleX float64 `json:"scale_x"`
	ScaleY float64 `json:"scale_y"`
	DX     float64 `json:"dx"`
	DY     float64 `json:"dy"`
}

// TextureTransform calculates the transform for a texture showing preview.
// An identity transform would stretch the preview to the texture; instead
// one dimension fits exactly and the other is bigger (cropped), centered.
func TextureTransform(texture, preview types.Size) Transform {
	ratioTexture := texture.AspectRatio()
	ratioPreview := preview.AspectRatio()

	t := Transform{ScaleX: 1, ScaleY: 1}
	if ratioTexture < ratioPreview {
		t.ScaleX = ratioPreview / ratioTexture
	} else {
		t.ScaleY = ratioTexture / ratioPreview
	}

	scaledWidth := float64(texture.Width) * t.ScaleX
	scaledHeight := float64(texture.Height) * t.ScaleY
	t.DX = (float64(texture.Width) - scaledWidth) / 2
	t.DY = (float64(texture.Height) - scaledHeight) / 2
	return t
}

// Apply maps a point in texture coordinates through the transform
func (t Transform) Apply(x, y float64) (float64, float64) {
	return x*t.ScaleX + t.DX, y*t.ScaleY + t.DY
}
