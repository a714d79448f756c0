package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/menta2k/viewfinder/pkg/display"
	"github.com/menta2k/viewfinder/pkg/types"
)

type placeOutput struct {
	Strategy   string     `json:"strategy"`
	Viewfinder types.Size `json:"viewfinder"`
	Preview    types.Size `json:"preview"`
	Rect       types.Rect `json:"rect"`
}

func newPlaceCommand(a *app) *cobra.Command {
	var natural bool

	cmd := &cobra.Command{
		Use:   "place WxH",
		Short: "Place a scaled preview in the viewfinder",
		Long: `Print the rectangle, relative to the viewfinder origin, that the scaled
preview occupies. Negative offsets mean the preview is cropped.

The preview is in current display orientation unless --natural is set, in
which case it is rotated by the camera rotation first.

Examples:
  viewfinder place 640x480 --viewfinder 320x240
  viewfinder place 1920x1080 --natural --strategy fit-center`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			preview, err := types.ParseSize(args[0])
			if err != nil {
				return err
			}
			vf, err := a.viewfinder()
			if err != nil {
				return err
			}
			if natural {
				preview = display.PreviewSizeInDisplay(preview, vf.CameraRotation())
			}

			out := placeOutput{
				Strategy:   vf.Display().StrategyName(),
				Viewfinder: vf.Display().Viewfinder,
				Preview:    preview,
				Rect:       vf.ScalePreview(preview),
			}
			return a.print(cmd, out, func(w io.Writer) {
				fmt.Fprintf(w, "%s in %s (%s): %s\n", out.Preview, out.Viewfinder, out.Strategy, out.Rect)
			})
		},
	}

	cmd.Flags().BoolVar(&natural, "natural", false, "preview is in natural camera orientation")
	return cmd
}
