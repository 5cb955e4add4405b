package cmd

import (
	"github.com/ostafen/gifkit/internal/gif"
	"github.com/spf13/cobra"
)

func DefineLoopCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "loop <input> <output>",
		Short:        "Set how many times an animated GIF repeats",
		Long:         `The 'loop' command attaches a NETSCAPE2.0 application extension carrying the loop count to the first frame.`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE:         RunLoop,
	}

	cmd.Flags().Uint16P("count", "c", 0, "number of repetitions, 0 loops forever")
	return cmd
}

func RunLoop(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetUint16("count")

	return transformFile(cmd, args[0], args[1], func(g gif.GIF) (gif.GIF, error) {
		return g.WithLoopCount(count), nil
	})
}
