package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menta2k/viewfinder/pkg/scaling"
	"github.com/menta2k/viewfinder/pkg/types"
)

var cameraSizes = []types.Size{
	types.NewSize(1920, 1080),
	types.NewSize(1280, 720),
	types.NewSize(640, 480),
}

func TestNewDefaultsToCenterCrop(t *testing.T) {
	cfg := New(0, types.NewSize(1080, 1920))
	assert.Equal(t, scaling.CenterCropName, cfg.StrategyName())

	var zero Configuration
	assert.Equal(t, scaling.CenterCropName, zero.StrategyName())
}

func TestValidate(t *testing.T) {
	assert.NoError(t, New(270, types.NewSize(10, 10)).Validate())
	assert.ErrorIs(t, New(45, types.NewSize(10, 10)).Validate(), ErrInvalidRotation)
	assert.ErrorIs(t, New(0, types.NewSize(0, 10)).Validate(), ErrInvalidViewfinder)
}

func TestBestPreviewSizeRotation(t *testing.T) {
	cfg := Configuration{Viewfinder: types.NewSize(1080, 1920), Strategy: scaling.FitCenter{}}

	// camera perpendicular to a portrait display: compare against 1920x1080
	best, err := cfg.BestPreviewSize(cameraSizes, true)
	require.NoError(t, err)
	assert.Equal(t, types.NewSize(1920, 1080), best)

	// not rotated: every landscape size is heavily letterboxed, least so 4:3
	best, err = cfg.BestPreviewSize(cameraSizes, false)
	require.NoError(t, err)
	assert.Equal(t, types.NewSize(640, 480), best)

	_, err = cfg.BestPreviewSize(nil, true)
	assert.ErrorIs(t, err, scaling.ErrNoPreviewSizes)
}

func TestScalePreviewDelegates(t *testing.T) {
	viewfinder := types.NewSize(1080, 1920)
	preview := types.NewSize(1080, 1920)

	for _, s := range []scaling.Strategy{scaling.CenterCrop{}, scaling.FitCenter{}, scaling.FitXY{}} {
		cfg := Configuration{Viewfinder: viewfinder, Strategy: s}
		assert.Equal(t, types.NewRect(0, 0, 1080, 1920), cfg.ScalePreview(preview), s.Name())
	}
}

func TestCameraRotation(t *testing.T) {
	tests := []struct {
		display, sensor int
		facing          Facing
		want            int
	}{
		{0, 90, FacingBack, 90},
		{90, 90, FacingBack, 0},
		{180, 90, FacingBack, 270},
		{270, 90, FacingBack, 180},
		{0, 270, FacingFront, 90},
		{90, 270, FacingFront, 0},
		{180, 270, FacingFront, 270},
	}
	for _, tt := range tests {
		got, err := CameraRotation(tt.display, tt.sensor, tt.facing)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "display=%d sensor=%d facing=%s", tt.display, tt.sensor, tt.facing)
	}

	_, err := CameraRotation(45, 90, FacingBack)
	assert.ErrorIs(t, err, ErrInvalidRotation)
}

func TestPreviewSizeInDisplay(t *testing.T) {
	natural := types.NewSize(1920, 1080)
	assert.True(t, IsRotated(90))
	assert.True(t, IsRotated(270))
	assert.False(t, IsRotated(180))
	assert.Equal(t, types.NewSize(1080, 1920), PreviewSizeInDisplay(natural, 90))
	assert.Equal(t, natural, PreviewSizeInDisplay(natural, 0))
}

func TestParseFacing(t *testing.T) {
	f, err := ParseFacing("front")
	require.NoError(t, err)
	assert.Equal(t, FacingFront, f)

	f, err = ParseFacing("")
	require.NoError(t, err)
	assert.Equal(t, FacingBack, f)

	_, err = ParseFacing("sideways")
	assert.Error(t, err)
}

func TestTextureTransform(t *testing.T) {
	wide := TextureTransform(types.NewSize(100, 100), types.NewSize(200, 100))
	assert.Equal(t, Transform{ScaleX: 2, ScaleY: 1, DX: -50, DY: 0}, wide)

	tall := TextureTransform(types.NewSize(200, 100), types.NewSize(100, 100))
	assert.Equal(t, Transform{ScaleX: 1, ScaleY: 2, DX: 0, DY: -50}, tall)

	x, y := wide.Apply(100, 100)
	assert.Equal(t, 150.0, x)
	assert.Equal(t, 100.0, y)
}
