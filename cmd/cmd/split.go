// Copyright (c) 2025 Stefano Scafiti
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ostafen/gifkit/internal/fuse"
	"github.com/ostafen/gifkit/internal/gif"
	osutils "github.com/ostafen/gifkit/pkg/util/os"
	"github.com/spf13/cobra"
)

func DefineSplitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split <input>",
		Short: "Write every frame of a GIF as a standalone file",
		Long: `The 'split' command writes each frame to its own single-frame GIF.
Frames keep the header, logical screen and global color table of the input, so their data is copied without recompression.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         RunSplit,
	}

	cmd.Flags().StringP("output-dir", "o", "", "directory where the frames will be placed; defaults to <input>-frames")
	return cmd
}

func RunSplit(cmd *cobra.Command, args []string) error {
	l, closeLog, err := setupLogger(cmd)
	if err != nil {
		return err
	}
	defer closeLog()

	g, err := loadGIF(args[0], l)
	if err != nil {
		return err
	}

	outDir, _ := cmd.Flags().GetString("output-dir")
	if outDir == "" {
		base := filepath.Base(args[0])
		outDir = strings.TrimSuffix(base, filepath.Ext(base)) + "-frames"
	}

	if _, err := osutils.EnsureDir(outDir, true); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "[INFO] Source: \t%s\n", absPath(args[0]))
	fmt.Fprintf(out, "[INFO] Destination: \t%s\n", absPath(outDir))

	for i := range g.Frames {
		single, err := g.Frame(i)
		if err != nil {
			return err
		}

		path := filepath.Join(outDir, fuse.FrameName(i))
		if err := gif.Save(single, path); err != nil {
			l.Error("unable to write frame", "frame", i, "err", err)
			return err
		}
		l.Debug("wrote frame", "frame", i, "path", path)
	}

	fmt.Fprintf(out, "[INFO] Frames written: \t%d\n", len(g.Frames))
	return nil
}
