package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/menta2k/viewfinder/pkg/probe"
	"github.com/menta2k/viewfinder/pkg/scaling"
	"github.com/menta2k/viewfinder/pkg/types"
)

type bestOutput struct {
	Strategy   string              `json:"strategy"`
	Best       types.Size          `json:"best"`
	Candidates []scaling.Candidate `json:"candidates"`
}

func newBestCommand(a *app) *cobra.Command {
	var frames []string

	cmd := &cobra.Command{
		Use:   "best [WxH...]",
		Short: "Select the best preview size for the viewfinder",
		Long: `Rank candidate preview sizes, given in natural camera orientation, and
select the best one for the configured viewfinder and strategy.

Candidates come from the arguments, from sample frames (--frames) or from
camera.preview_sizes in the configuration. Strategies that do not score
candidates keep the first one.

Examples:
  viewfinder best 1920x1080 1280x720 640x480
  viewfinder best --strategy fit-center --frames ./captures`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sizes, err := a.candidates(cmd.Context(), args, frames)
			if err != nil {
				return err
			}
			vf, err := a.viewfinder()
			if err != nil {
				return err
			}

			best, err := vf.BestPreviewSize(sizes)
			if err != nil {
				return err
			}
			out := bestOutput{
				Strategy:   vf.Display().StrategyName(),
				Best:       best,
				Candidates: vf.Rank(sizes),
			}
			return a.print(cmd, out, func(w io.Writer) {
				fmt.Fprintf(w, "best: %s (%s)\n", out.Best, out.Strategy)
				for _, c := range out.Candidates {
					fmt.Fprintf(w, "  %-12s %.4f\n", c.Size, c.Score)
				}
			})
		},
	}

	cmd.Flags().StringSliceVar(&frames, "frames", nil, "sample frames or directories to read candidate sizes from")
	return cmd
}

// candidates returns preview sizes from args, sample frames or the configuration
func (a *app) candidates(ctx context.Context, args, frames []string) ([]types.Size, error) {
	switch {
	case len(args) > 0:
		return types.ParseSizes(args)
	case len(frames) > 0:
		return probe.New(probe.Options{}).Paths(ctx, frames)
	default:
		return a.cfg.PreviewSizes()
	}
}
