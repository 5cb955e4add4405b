package cmd

import (
	"bytes"
	"image"
	"image/color"
	stdgif "image/gif"
	"os"
	"path/filepath"
	"testing"

	"github.com/ostafen/gifkit/internal/fuse"
	"github.com/ostafen/gifkit/internal/gif"
	"github.com/stretchr/testify/require"
)

func writeAnimated(t *testing.T, dir string, frames int) string {
	t.Helper()

	pal := color.Palette{color.Black, color.White}
	g := &stdgif.GIF{LoopCount: 2}
	for i := range frames {
		img := image.NewPaletted(image.Rect(0, 0, 4, 4), pal)
		img.Pix[i%len(img.Pix)] = 1
		g.Image = append(g.Image, img)
		g.Delay = append(g.Delay, 5)
	}

	var buf bytes.Buffer
	require.NoError(t, stdgif.EncodeAll(&buf, g))

	path := filepath.Join(dir, "anim.gif")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestReverseCommand(t *testing.T) {
	dir := t.TempDir()
	in := writeAnimated(t, dir, 3)
	out := filepath.Join(dir, "reversed.gif")

	stdout, err := run(t, "reverse", in, out)
	require.NoError(t, err)
	require.Contains(t, stdout, "[INFO] Saved to:")

	src, err := gif.Load(in)
	require.NoError(t, err)
	dst, err := gif.Load(out)
	require.NoError(t, err)
	require.Equal(t, src.Reverse(), dst)
}

func TestResizeCommand(t *testing.T) {
	dir := t.TempDir()
	in := writeAnimated(t, dir, 2)
	out := filepath.Join(dir, "resized.gif")

	_, err := run(t, "resize", in, out, "--width", "32", "--height", "16")
	require.NoError(t, err)

	dst, err := gif.Load(out)
	require.NoError(t, err)
	require.Equal(t, uint16(32), dst.Screen.Width)
	require.Equal(t, uint16(16), dst.Screen.Height)

	_, err = run(t, "resize", in, out, "--width", "0", "--height", "16")
	require.Error(t, err)
}

func TestLoopCommand(t *testing.T) {
	dir := t.TempDir()
	in := writeAnimated(t, dir, 2)
	out := filepath.Join(dir, "looped.gif")

	_, err := run(t, "loop", in, out, "--count", "9")
	require.NoError(t, err)

	dst, err := gif.Load(out)
	require.NoError(t, err)
	n, ok := dst.LoopCount()
	require.True(t, ok)
	require.Equal(t, 9, n)
}

func TestInfoCommand(t *testing.T) {
	dir := t.TempDir()
	in := writeAnimated(t, dir, 3)

	stdout, err := run(t, "info", in)
	require.NoError(t, err)
	require.Contains(t, stdout, "[INFO] Version: \t89a")
	require.Contains(t, stdout, "[INFO] Canvas: \t4x4")
	require.Contains(t, stdout, "[INFO] Frames: \t3")
	require.Contains(t, stdout, "[INFO] Loop: \trepeat 2 (3 plays)")
	require.Contains(t, stdout, "FRAME")
	require.Contains(t, stdout, "app:NETSCAPE")
	require.Contains(t, stdout, "local(2)")
}

func TestSplitCommand(t *testing.T) {
	dir := t.TempDir()
	in := writeAnimated(t, dir, 3)
	outDir := filepath.Join(dir, "frames")

	stdout, err := run(t, "split", in, "--output-dir", outDir)
	require.NoError(t, err)
	require.Contains(t, stdout, "[INFO] Frames written: \t3")

	src, err := gif.Load(in)
	require.NoError(t, err)

	for i := range 3 {
		frame, err := gif.Load(filepath.Join(outDir, fuse.FrameName(i)))
		require.NoError(t, err)
		require.Len(t, frame.Frames, 1)
		require.Equal(t, src.Frames[i], frame.Frames[0])
	}
}

func TestCommandReportsDecodeErrors(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "bad.gif")
	require.NoError(t, os.WriteFile(in, []byte("GIX89a"), 0644))

	_, err := run(t, "reverse", in, filepath.Join(dir, "out.gif"))
	require.ErrorIs(t, err, gif.ErrInvalidSignature)

	_, err = run(t, "info", filepath.Join(dir, "missing.gif"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLogFile(t *testing.T) {
	dir := t.TempDir()
	in := writeAnimated(t, dir, 2)
	logFile := filepath.Join(dir, "logs", "gifkit.log")

	_, err := run(t, "--log-level", "DEBUG", "--log-file", logFile, "info", "--no-frames", in)
	require.NoError(t, err)

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	require.Contains(t, string(data), "image block")
	require.Contains(t, string(data), "loaded gif")
}

func TestDefaultMountpoint(t *testing.T) {
	require.Equal(t, "anim", defaultMountpoint("/tmp/anim.gif"))
	require.Equal(t, "anim_mnt", defaultMountpoint("anim"))
}
