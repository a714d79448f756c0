package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/menta2k/viewfinder/pkg/scaling"
	"github.com/menta2k/viewfinder/pkg/types"
)

func newScoreCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "score WxH...",
		Short: "Score preview sizes without ranking them",
		Long: `Print the score the configured strategy gives each preview size, in the
order given. Sizes are in natural camera orientation.

Examples:
  viewfinder score 1920x1080 640x480 --strategy fit-xy`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sizes, err := types.ParseSizes(args)
			if err != nil {
				return err
			}
			vf, err := a.viewfinder()
			if err != nil {
				return err
			}

			scores := make([]scaling.Candidate, len(sizes))
			for i, size := range sizes {
				scores[i] = scaling.Candidate{Size: size, Score: vf.Score(size)}
			}
			return a.print(cmd, scores, func(w io.Writer) {
				for _, c := range scores {
					fmt.Fprintf(w, "%-12s %.4f\n", c.Size, c.Score)
				}
			})
		},
	}
}
