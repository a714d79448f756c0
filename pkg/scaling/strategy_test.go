package scaling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menta2k/viewfinder/pkg/types"
)

func size(w, h int) types.Size { return types.NewSize(w, h) }

func TestParse(t *testing.T) {
	cases := map[string]string{
		"center-crop": CenterCropName,
		"CenterCrop":  CenterCropName,
		"fit-center":  FitCenterName,
		" fit_center": FitCenterName,
		"fit-xy":      FitXYName,
		"FITXY":       FitXYName,
	}
	for in, want := range cases {
		s, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, s.Name(), in)
	}

	_, err := Parse("stretch")
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestNames(t *testing.T) {
	for _, name := range Names() {
		s, err := Parse(name)
		require.NoError(t, err)
		assert.Equal(t, name, s.Name())
	}
}

func TestScoreOf(t *testing.T) {
	desired := size(640, 480)
	assert.Equal(t, BaseScore, ScoreOf(CenterCrop{}, size(1, 1), desired))
	assert.Equal(t, 1.0, ScoreOf(FitCenter{}, desired, desired))
	assert.Equal(t, 1.0, ScoreOf(FitXY{}, desired, desired))
}

func TestBestPreviewSize(t *testing.T) {
	sizes := []types.Size{size(320, 240), size(1280, 720), size(640, 480), size(1920, 1080)}

	t.Run("fit center prefers exact match", func(t *testing.T) {
		best, err := BestPreviewSize(FitCenter{}, sizes, size(640, 480))
		require.NoError(t, err)
		assert.Equal(t, size(640, 480), best)
	})

	t.Run("fit xy prefers exact match", func(t *testing.T) {
		best, err := BestPreviewSize(FitXY{}, sizes, size(1280, 720))
		require.NoError(t, err)
		assert.Equal(t, size(1280, 720), best)
	})

	t.Run("center crop keeps the first candidate", func(t *testing.T) {
		best, err := BestPreviewSize(CenterCrop{}, sizes, size(1920, 1080))
		require.NoError(t, err)
		assert.Equal(t, size(320, 240), best)
	})

	t.Run("invalid desired returns first", func(t *testing.T) {
		best, err := BestPreviewSize(FitCenter{}, sizes, size(0, 0))
		require.NoError(t, err)
		assert.Equal(t, size(320, 240), best)
	})

	t.Run("degenerate sizes lose", func(t *testing.T) {
		best, err := BestPreviewSize(FitXY{}, []types.Size{size(0, 480), size(-1, 10), size(100, 100)}, size(640, 480))
		require.NoError(t, err)
		assert.Equal(t, size(100, 100), best)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := BestPreviewSize(FitCenter{}, nil, size(640, 480))
		assert.ErrorIs(t, err, ErrNoPreviewSizes)
	})
}

func TestRankIsStableOnTies(t *testing.T) {
	// both are a 2x stretch on one axis
	sizes := []types.Size{size(200, 100), size(100, 200), size(100, 100)}
	ranked := Rank(FitXY{}, sizes, size(100, 100))

	require.Len(t, ranked, 3)
	assert.Equal(t, size(100, 100), ranked[0].Size)
	assert.Equal(t, size(200, 100), ranked[1].Size)
	assert.Equal(t, size(100, 200), ranked[2].Size)
	assert.Equal(t, ranked[1].Score, ranked[2].Score)

	reversed := Rank(FitXY{}, []types.Size{size(100, 200), size(200, 100)}, size(100, 100))
	assert.Equal(t, size(100, 200), reversed[0].Size)
}

func TestRankOrdersDescending(t *testing.T) {
	sizes := []types.Size{size(176, 144), size(320, 240), size(640, 480), size(800, 600), size(1280, 960)}
	ranked := Rank(FitCenter{}, sizes, size(800, 600))
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}
	assert.Equal(t, size(800, 600), ranked[0].Size)
}

func BenchmarkBestPreviewSize(b *testing.B) {
	sizes := []types.Size{
		size(176, 144), size(320, 240), size(352, 288), size(640, 480), size(720, 480),
		size(1280, 720), size(1440, 1080), size(1920, 1080), size(2560, 1440), size(3840, 2160),
	}
	desired := size(1080, 1920).Rotate()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = BestPreviewSize(FitCenter{}, sizes, desired)
	}
}
