package cmd

import (
	"github.com/ostafen/gifkit/internal/gif"
	"github.com/spf13/cobra"
)

func DefineReverseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reverse <input> <output>",
		Short: "Write a copy of a GIF with its frames in reverse order",
		Long: `The 'reverse' command decodes the input GIF and writes its frames in reverse order.
Every block is copied as found: extensions travel with the frame they precede and image data is never recompressed.`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE:         RunReverse,
	}
}

func RunReverse(cmd *cobra.Command, args []string) error {
	return transformFile(cmd, args[0], args[1], func(g gif.GIF) (gif.GIF, error) {
		return g.Reverse(), nil
	})
}
