package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/menta2k/viewfinder/pkg/framing"
	"github.com/menta2k/viewfinder/pkg/types"
)

func newFrameCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "frame [WxH]",
		Short: "Compute the scanning frame for a preview",
		Long: `Place a preview, given in natural camera orientation, and compute the
scanning frame in viewfinder and preview pixel coordinates. Without an
argument the best of camera.preview_sizes is used.

Examples:
  viewfinder frame 1920x1080 --rotation 0 --sensor-orientation 90
  viewfinder frame --strategy fit-center --frame-width 600 --frame-height 300`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, err := a.layout(args)
			if err != nil {
				return err
			}
			return a.print(cmd, layout, func(w io.Writer) {
				fmt.Fprintf(w, "strategy:      %s\n", layout.Strategy)
				fmt.Fprintf(w, "viewfinder:    %s\n", layout.Viewfinder)
				fmt.Fprintf(w, "preview:       %s\n", layout.Preview)
				fmt.Fprintf(w, "surface:       %s\n", layout.Surface)
				fmt.Fprintf(w, "frame:         %s\n", layout.Frame)
				fmt.Fprintf(w, "preview frame: %s\n", layout.PreviewFrame)
			})
		},
	}
}

// layout lays out the preview in args, or the best configured preview size
func (a *app) layout(args []string) (framing.Layout, error) {
	vf, err := a.viewfinder()
	if err != nil {
		return framing.Layout{}, err
	}
	if len(args) == 1 {
		natural, err := types.ParseSize(args[0])
		if err != nil {
			return framing.Layout{}, err
		}
		return vf.Layout(natural)
	}

	sizes, err := a.cfg.PreviewSizes()
	if err != nil {
		return framing.Layout{}, err
	}
	return vf.Configure(sizes)
}
