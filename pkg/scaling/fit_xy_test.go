package scaling

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"

	"github.com/menta2k/viewfinder/pkg/types"
)

func TestFitXYScore(t *testing.T) {
	desired := size(100, 100)

	// distortion 2 -> 1/8, scale 2x1 -> 0.5
	assert.Equal(t, 0.0625, FitXY{}.Score(size(200, 100), desired))
	assert.Equal(t, 0.0625, FitXY{}.Score(size(100, 200), desired))

	// same aspect, half size: scale score 1/4, no distortion
	assert.InDelta(t, 0.25, FitXY{}.Score(size(50, 50), desired), 1e-12)

	for _, s := range []types.Size{size(0, 100), size(100, 0), size(-5, 100), size(100, -5)} {
		assert.Equal(t, 0.0, FitXY{}.Score(s, desired), s.String())
	}
}

func TestAbsRatio(t *testing.T) {
	assert.Equal(t, 2.0, absRatio(0.5))
	assert.Equal(t, 2.0, absRatio(2))
	assert.Equal(t, 1.0, absRatio(1))
}

func TestFitXYProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("placement always fills the viewfinder", prop.ForAll(
		func(pw, ph, vw, vh int) bool {
			return FitXY{}.ScalePreview(size(pw, ph), size(vw, vh)) == types.NewRect(0, 0, vw, vh)
		},
		gen.IntRange(-100, 5000),
		gen.IntRange(-100, 5000),
		gen.IntRange(1, 5000),
		gen.IntRange(1, 5000),
	))

	properties.Property("exact match scores 1", prop.ForAll(
		func(w, h int) bool {
			return FitXY{}.Score(size(w, h), size(w, h)) == 1.0
		},
		gen.IntRange(1, 10000),
		gen.IntRange(1, 10000),
	))

	properties.Property("score stays within (0, 1]", prop.ForAll(
		func(w, h, dw, dh int) bool {
			s := FitXY{}.Score(size(w, h), size(dw, dh))
			return s > 0 && s <= 1
		},
		gen.IntRange(1, 5000),
		gen.IntRange(1, 5000),
		gen.IntRange(1, 5000),
		gen.IntRange(1, 5000),
	))

	properties.TestingRun(t)
}
