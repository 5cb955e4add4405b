package cmd

import (
	"fmt"

	"github.com/ostafen/gifkit/internal/gif"
	"github.com/spf13/cobra"
)

type ResizeOptions struct {
	Width  uint16
	Height uint16
}

func DefineResizeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resize <input> <output>",
		Short: "Rewrite the logical screen size of a GIF",
		Long: `The 'resize' command overwrites the canvas width and height stored in the logical screen descriptor.
Frames, color tables and image data are copied unchanged: no pixel is scaled.`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE:         RunResize,
	}

	cmd.Flags().Uint16("width", 0, "new canvas width in pixels (required)")
	cmd.Flags().Uint16("height", 0, "new canvas height in pixels (required)")

	_ = cmd.MarkFlagRequired("width")
	_ = cmd.MarkFlagRequired("height")
	return cmd
}

func RunResize(cmd *cobra.Command, args []string) error {
	opts, err := parseResizeOptions(cmd)
	if err != nil {
		return err
	}

	return transformFile(cmd, args[0], args[1], func(g gif.GIF) (gif.GIF, error) {
		return g.Resize(opts.Width, opts.Height), nil
	})
}

func parseResizeOptions(cmd *cobra.Command) (ResizeOptions, error) {
	width, _ := cmd.Flags().GetUint16("width")
	height, _ := cmd.Flags().GetUint16("height")

	if width == 0 || height == 0 {
		return ResizeOptions{}, fmt.Errorf("width and height must be positive")
	}
	return ResizeOptions{Width: width, Height: height}, nil
}
