package framing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menta2k/viewfinder/pkg/display"
	"github.com/menta2k/viewfinder/pkg/scaling"
	"github.com/menta2k/viewfinder/pkg/types"
)

func TestOptionsValidate(t *testing.T) {
	assert.NoError(t, DefaultOptions().Validate())
	assert.NoError(t, Options{MarginFraction: 0.49}.Validate())
	assert.ErrorIs(t, Options{MarginFraction: 0.5}.Validate(), ErrMarginFraction)
	assert.ErrorIs(t, Options{MarginFraction: -0.1}.Validate(), ErrMarginFraction)
	assert.ErrorIs(t, Options{EdgeFraction: 1.5}.Validate(), ErrEdgeFraction)
}

func TestFramingRect(t *testing.T) {
	container := types.NewRect(0, 0, 400, 800)
	surface := types.NewRect(0, 0, 400, 800)

	tests := []struct {
		name string
		opts Options
		want types.Rect
	}{
		{"margin, squared up", DefaultOptions(), types.NewRect(40, 240, 360, 560)},
		{"fixed size", Options{Size: types.NewSize(200, 200)}, types.NewRect(100, 300, 300, 500)},
		{"fixed size larger than container", Options{Size: types.NewSize(1000, 1000)}, container},
		{"edge fraction", Options{EdgeFraction: 0.6}, types.NewRect(80, 280, 320, 520)},
		{"no margin", Options{}, types.NewRect(0, 200, 400, 600)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FramingRect(container, surface, tt.opts))
		})
	}
}

func TestFramingRectUsesVisibleSurface(t *testing.T) {
	// letterboxed surface: only the middle band shows the preview
	container := types.NewRect(0, 0, 400, 800)
	surface := types.NewRect(0, 250, 400, 550)

	frame := FramingRect(container, surface, DefaultOptions())
	assert.Equal(t, types.NewRect(30, 280, 370, 520), frame)
}

func TestPreviewFramingRect(t *testing.T) {
	frame := types.NewRect(40, 240, 360, 560)
	surface := types.NewRect(0, 0, 400, 800)

	got, err := PreviewFramingRect(frame, surface, types.NewSize(300, 600))
	require.NoError(t, err)
	assert.Equal(t, types.NewRect(30, 180, 270, 420), got)

	// cropped surface shifts the frame into the preview
	got, err = PreviewFramingRect(types.NewRect(40, 40, 360, 360), types.NewRect(-200, 0, 600, 400), types.NewSize(800, 400))
	require.NoError(t, err)
	assert.Equal(t, types.NewRect(240, 40, 560, 360), got)

	_, err = PreviewFramingRect(types.NewRect(0, 0, 1, 1), types.NewRect(0, 0, 1000, 1000), types.NewSize(10, 10))
	assert.ErrorIs(t, err, ErrFrameTooSmall)

	_, err = PreviewFramingRect(frame, types.Rect{}, types.NewSize(10, 10))
	assert.ErrorIs(t, err, ErrNoSurface)
}

func TestCompute(t *testing.T) {
	cfg := display.New(0, types.NewSize(400, 800))

	layout, err := Compute(cfg, types.NewSize(300, 600), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, Layout{
		Strategy:     scaling.CenterCropName,
		Viewfinder:   types.NewSize(400, 800),
		Preview:      types.NewSize(300, 600),
		Surface:      types.NewRect(0, 0, 400, 800),
		Frame:        types.NewRect(40, 240, 360, 560),
		PreviewFrame: types.NewRect(30, 180, 270, 420),
	}, layout)
}

func TestComputeCropped(t *testing.T) {
	cfg := display.New(0, types.NewSize(400, 400))

	layout, err := Compute(cfg, types.NewSize(800, 400), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, types.NewRect(-200, 0, 600, 400), layout.Surface)
	assert.Equal(t, types.NewRect(40, 40, 360, 360), layout.Frame)
	assert.Equal(t, types.NewRect(240, 40, 560, 360), layout.PreviewFrame)
}

func TestComputeErrors(t *testing.T) {
	cfg := display.New(0, types.NewSize(400, 400))

	_, err := Compute(cfg, types.NewSize(0, 400), DefaultOptions())
	assert.ErrorIs(t, err, types.ErrInvalidSize)

	_, err = Compute(cfg, types.NewSize(400, 400), Options{MarginFraction: 0.7})
	assert.ErrorIs(t, err, ErrMarginFraction)

	_, err = Compute(display.New(33, types.NewSize(400, 400)), types.NewSize(400, 400), DefaultOptions())
	assert.ErrorIs(t, err, display.ErrInvalidRotation)

	// a 1px frame over a huge preview maps to nothing
	_, err = Compute(cfg, types.NewSize(1, 1), Options{Size: types.NewSize(1, 1)})
	assert.ErrorIs(t, err, ErrFrameTooSmall)
}
