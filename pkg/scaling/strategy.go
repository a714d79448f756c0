// Package scaling implements the strategies used to pick a camera preview
// resolution for a viewfinder and to place the scaled preview inside it.
package scaling

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/menta2k/viewfinder/pkg/types"
)

var (
	// ErrNoPreviewSizes is returned when selection is asked to choose from nothing
	ErrNoPreviewSizes = errors.New("no preview sizes to choose from")

	// ErrUnknownStrategy is returned by Parse for unrecognized names
	ErrUnknownStrategy = errors.New("unknown scaling strategy")
)

// BaseScore is the score given to every candidate by a strategy that does
// not implement Scorer.
const BaseScore = 0.5

// Placer positions a scaled preview relative to the viewfinder origin
type Placer interface {
	ScalePreview(preview, viewfinder types.Size) types.Rect
}

// Scorer rates how well a camera preview size suits the desired viewfinder
// size. 1.0 is an exact match, 0.0 means the size is unusable.
type Scorer interface {
	Score(size, desired types.Size) float64
}

// Strategy is a named preview placement policy. Strategies that can rank
// candidate sizes also implement Scorer.
type Strategy interface {
	Placer
	Name() string
}

// Candidate is a preview size together with its score
type Candidate struct {
	Size  types.Size `json:"size"`
	Score float64    `json:"score"`
}

// ScoreOf returns the score s assigns to size, or BaseScore when s does not
// score candidates.
func ScoreOf(s Strategy, size, desired types.Size) float64 {
	if scorer, ok := s.(Scorer); ok {
		return scorer.Score(size, desired)
	}
	return BaseScore
}

// Rank scores every size and orders them best first. Equal scores keep the
// order in which the sizes were given.
func Rank(s Strategy, sizes []types.Size, desired types.Size) []Candidate {
	ranked := make([]Candidate, len(sizes))
	for i, size := range sizes {
		ranked[i] = Candidate{Size: size, Score: ScoreOf(s, size, desired)}
	}
	slices.SortStableFunc(ranked, func(a, b Candidate) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return ranked
}

// BestPreviewSize picks the highest scoring preview size for desired.
// If desired is not a valid size the first candidate is returned.
func BestPreviewSize(s Strategy, sizes []types.Size, desired types.Size) (types.Size, error) {
	if len(sizes) == 0 {
		return types.Size{}, ErrNoPreviewSizes
	}
	if !desired.Valid() {
		return sizes[0], nil
	}

	ranked := Rank(s, sizes, desired)
	if logger := slog.Default(); logger.Enabled(context.Background(), slog.LevelDebug) {
		logger.Debug("ranked preview sizes",
			slog.String("strategy", s.Name()),
			slog.String("desired", desired.String()),
			slog.Any("candidates", ranked),
		)
	}
	best := ranked[0]
	slog.Debug("selected preview size",
		slog.String("strategy", s.Name()),
		slog.String("size", best.Size.String()),
		slog.Float64("score", best.Score),
	)
	return best.Size, nil
}

// Names returns the names accepted by Parse
func Names() []string {
	return []string{CenterCropName, FitCenterName, FitXYName}
}

// Parse returns the strategy registered under name
func Parse(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case CenterCropName, "centercrop", "center_crop":
		return CenterCrop{}, nil
	case FitCenterName, "fitcenter", "fit_center":
		return FitCenter{}, nil
	case FitXYName, "fitxy", "fit_xy":
		return FitXY{}, nil
	default:
		return nil, fmt.Errorf("%w: %q (use one of %s)", ErrUnknownStrategy, name, strings.Join(Names(), ", "))
	}
}

// centered returns the rect placing scaled centered over a viewfinder,
// using truncating division for the offsets.
func centered(scaled, viewfinder types.Size) types.Rect {
	dx := (scaled.Width - viewfinder.Width) / 2
	dy := (scaled.Height - viewfinder.Height) / 2
	return types.NewRect(-dx, -dy, scaled.Width-dx, scaled.Height-dy)
}

func logPlacement(strategy string, preview, scaled, viewfinder types.Size) {
	slog.Debug("scaled preview",
		slog.String("strategy", strategy),
		slog.String("preview", preview.String()),
		slog.String("scaled", scaled.String()),
		slog.String("want", viewfinder.String()),
	)
}
