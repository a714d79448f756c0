package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/menta2k/viewfinder/pkg/probe"
)

func newProbeCommand(a *app) *cobra.Command {
	var autoOrient bool

	cmd := &cobra.Command{
		Use:   "probe PATH...",
		Short: "Read preview sizes from sample frames",
		Long: `Print the dimensions of sample camera frames. Directories are searched
recursively for jpg, png and webp files and http(s) URLs are downloaded.
Only image headers are decoded unless --auto-orient is set.

Examples:
  viewfinder probe ./captures
  viewfinder probe frame.jpg --auto-orient
  viewfinder probe https://example.com/frame.jpg`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sizes, err := probe.New(probe.Options{AutoOrient: autoOrient}).Paths(cmd.Context(), args)
			if err != nil {
				return err
			}
			return a.print(cmd, sizes, func(w io.Writer) {
				for _, size := range sizes {
					fmt.Fprintln(w, size)
				}
			})
		},
	}

	cmd.Flags().BoolVar(&autoOrient, "auto-orient", false, "apply EXIF orientation (decodes whole images)")
	return cmd
}
