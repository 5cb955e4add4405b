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
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/ostafen/gifkit/internal/gif"
	"github.com/spf13/cobra"
)

func DefineInfoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <input>",
		Short: "Describe the block structure of a GIF",
		Long: `The 'info' command prints the header, logical screen and global color table of a GIF,
followed by a table with one row per frame: placement, delay, disposal method, local color table,
the extensions attached to the frame and the size of its compressed image data.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         RunInfo,
	}

	cmd.Flags().Bool("no-frames", false, "print only the summary")
	return cmd
}

func RunInfo(cmd *cobra.Command, args []string) error {
	l, closeLog, err := setupLogger(cmd)
	if err != nil {
		return err
	}
	defer closeLog()

	g, err := loadGIF(args[0], l)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printSummary(out, args[0], g.Summary())

	if noFrames, _ := cmd.Flags().GetBool("no-frames"); noFrames {
		return nil
	}

	fmt.Fprintln(out)
	return printFrames(out, g)
}

func printSummary(w io.Writer, path string, s gif.Summary) {
	loop := "no"
	switch {
	case s.LoopCount == 0:
		loop = "forever"
	case s.LoopCount > 0:
		loop = fmt.Sprintf("repeat %d (%d plays)", s.LoopCount, s.LoopCount+1)
	}

	fmt.Fprintf(w, "[INFO] File: \t%s (%s)\n", absPath(path), fileSize(path))
	fmt.Fprintf(w, "[INFO] Version: \t%s\n", s.Version)
	fmt.Fprintf(w, "[INFO] Canvas: \t%dx%d\n", s.Width, s.Height)
	fmt.Fprintf(w, "[INFO] Global colors: \t%d\n", s.GlobalColors)
	fmt.Fprintf(w, "[INFO] Frames: \t%s\n", humanize.Comma(int64(s.Frames)))
	fmt.Fprintf(w, "[INFO] Duration: \t%s\n", s.Duration)
	fmt.Fprintf(w, "[INFO] Loop: \t%s\n", loop)

	for _, c := range s.Comments {
		fmt.Fprintf(w, "[INFO] Comment: \t%q\n", c)
	}
}

func printFrames(w io.Writer, g gif.GIF) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FRAME\tPOSITION\tSIZE\tDELAY\tDISPOSAL\tCOLORS\tINTERLACED\tEXTENSIONS\tDATA")

	for i, f := range g.Frames {
		d := f.Descriptor

		disposal := "-"
		if gce, ok := f.GraphicControl.Get(); ok {
			disposal = disposalName(gce.Fields.DisposalMethod)
		}

		colors := "global"
		if t, ok := f.LocalColorTable.Get(); ok {
			colors = fmt.Sprintf("local(%d)", len(t))
		}

		fmt.Fprintf(tw, "%d\t%d,%d\t%dx%d\t%s\t%s\t%s\t%t\t%s\t%s\n",
			i,
			d.Left, d.Top,
			d.Width, d.Height,
			f.Duration(),
			disposal,
			colors,
			d.Fields.Interlace,
			extensionNames(f),
			humanize.Bytes(uint64(len(gif.Join(f.Data.Blocks)))),
		)
	}
	return tw.Flush()
}

func disposalName(method uint8) string {
	switch method {
	case gif.DisposalUnspecified:
		return "unspecified"
	case gif.DisposalNone:
		return "none"
	case gif.DisposalBackground:
		return "background"
	case gif.DisposalPrevious:
		return "previous"
	}
	return fmt.Sprintf("reserved(%d)", method)
}

func extensionNames(f gif.Frame) string {
	var names []string
	if f.GraphicControl.IsSome() {
		names = append(names, "gce")
	}
	if f.Comment.IsSome() {
		names = append(names, "comment")
	}
	if f.PlainText.IsSome() {
		names = append(names, "text")
	}
	if app, ok := f.Application.Get(); ok {
		names = append(names, "app:"+strings.TrimRight(string(app.Identifier[:]), "\x00 "))
	}
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ",")
}
