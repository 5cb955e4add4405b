package cmd

import (
	"log/slog"

	"github.com/ostafen/gifkit/internal/env"
	"github.com/ostafen/gifkit/internal/gif"
	"github.com/ostafen/gifkit/internal/logger"
	"github.com/spf13/cobra"
)

func Execute() error {
	return NewRootCommand().Execute()
}

func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   env.AppName,
		Short: env.AppName + " - structural GIF decoder and encoder",
	}

	rootCmd.PersistentFlags().String("log-level", "INFO", "minimum log level (DEBUG, INFO, WARN, ERROR)")
	rootCmd.PersistentFlags().String("log-file", "", "write logs to the specified file instead of stderr")

	rootCmd.AddCommand(
		DefineReverseCommand(),
		DefineResizeCommand(),
		DefineLoopCommand(),
		DefineInfoCommand(),
		DefineSplitCommand(),
		DefineMountCommand(),
	)
	return rootCmd
}

// setupLogger builds the logger configured by the persistent flags.
// The returned closer must be called once the command is done.
func setupLogger(cmd *cobra.Command) (*slog.Logger, func() error, error) {
	logLevel, _ := cmd.Flags().GetString("log-level")
	logFile, _ := cmd.Flags().GetString("log-file")

	l, f, err := logger.Open(logFile, cmd.ErrOrStderr(), logger.ParseLevel(logLevel))
	if err != nil {
		return nil, nil, err
	}
	if f == nil {
		return l, func() error { return nil }, nil
	}
	return l, f.Close, nil
}

// loadGIF decodes the file at path logging through the command logger.
func loadGIF(path string, l *slog.Logger) (gif.GIF, error) {
	g, err := gif.Load(path, gif.WithLogger(l))
	if err != nil {
		return gif.GIF{}, err
	}
	l.Debug("loaded gif", "path", path, "frames", len(g.Frames))
	return g, nil
}

// transformFile loads in, applies fn and saves the result to out.
func transformFile(cmd *cobra.Command, in, out string, fn func(gif.GIF) (gif.GIF, error)) (err error) {
	l, closeLog, err := setupLogger(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeLog(); err == nil {
			err = cerr
		}
	}()

	g, err := loadGIF(in, l)
	if err != nil {
		return err
	}

	g, err = fn(g)
	if err != nil {
		return err
	}

	if err := gif.Save(g, out); err != nil {
		return err
	}
	l.Info("saved gif", "path", out, "frames", len(g.Frames))

	printSaved(cmd.OutOrStdout(), out)
	return nil
}
