package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/menta2k/viewfinder/internal/sketch"
)

func newSketchCommand(a *app) *cobra.Command {
	var output string
	var padding int

	cmd := &cobra.Command{
		Use:   "sketch [WxH]",
		Short: "Draw a diagram of a preview layout",
		Long: `Draw the viewfinder, the placed preview surface and the scanning frame
for a preview in natural camera orientation, or the best configured preview
size, and save it as png, jpg or webp.

Examples:
  viewfinder sketch 1920x1080 -o layout.png
  viewfinder sketch --strategy fit-center --format webp --lossless`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, err := a.layout(args)
			if err != nil {
				return err
			}

			path := output
			if filepath.Ext(path) == "" {
				path += "." + a.cfg.Output.Format
			}
			img := sketch.Draw(layout, sketch.Options{MaxDim: a.cfg.Output.MaxDim, Padding: padding})
			if err := sketch.Save(img, path, "", a.cfg.Output.Quality, a.cfg.Output.Lossless); err != nil {
				return fmt.Errorf("failed to save sketch: %w", err)
			}

			return a.print(cmd, map[string]any{"path": path, "layout": layout}, func(w io.Writer) {
				fmt.Fprintf(w, "wrote %s\n", path)
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "layout", "output path; the extension selects the format")
	cmd.Flags().IntVar(&padding, "padding", 40, "padding around the diagram in layout pixels")
	cmd.Flags().String("format", "", "format used when the output has no extension (png, jpg, webp)")
	cmd.Flags().Int("quality", 0, "jpg/webp quality (1-100)")
	cmd.Flags().Bool("lossless", false, "lossless webp")
	cmd.Flags().Int("max-dim", 0, "maximum long side of the diagram in pixels")
	a.bindFlags(cmd, map[string]string{
		"format":   "output.format",
		"quality":  "output.quality",
		"lossless": "output.lossless",
		"max-dim":  "output.max_dim",
	})
	return cmd
}
