package gif_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/ostafen/gifkit/internal/gif"
	"github.com/stretchr/testify/require"
)

func TestLoadSave(t *testing.T) {
	dir := t.TempDir()
	data, _ := animatedGIF(t, 3)

	in := filepath.Join(dir, "in.gif")
	require.NoError(t, os.WriteFile(in, data, 0644))

	g, err := gif.Load(in)
	require.NoError(t, err)
	require.Len(t, g.Frames, 3)

	out := filepath.Join(dir, "out.gif")
	require.NoError(t, gif.Save(g.Reverse(), out))

	reversed, err := gif.Load(out)
	require.NoError(t, err)
	require.Equal(t, g, reversed.Reverse())

	require.NoError(t, gif.Save(g, out))
	written, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, data, written)
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.gif")

	_, err := gif.Load(path)
	require.ErrorIs(t, err, fs.ErrNotExist)

	var ioErr *gif.IOError
	require.True(t, errors.As(err, &ioErr))
	require.Equal(t, path, ioErr.Path)
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.gif")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	_, err := gif.Load(path)
	require.ErrorIs(t, err, gif.ErrTruncated)
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.gif")
	require.NoError(t, os.WriteFile(path, []byte("GIX89a"), 0644))

	_, err := gif.Load(path)
	require.ErrorIs(t, err, gif.ErrInvalidSignature)
}

func TestSaveUnwritablePath(t *testing.T) {
	g, err := gif.Load(writeMinimal(t))
	require.NoError(t, err)

	err = gif.Save(g, filepath.Join(t.TempDir(), "no-such-dir", "out.gif"))

	var ioErr *gif.IOError
	require.True(t, errors.As(err, &ioErr))
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func writeMinimal(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "minimal.gif")
	require.NoError(t, os.WriteFile(path, minimalGIF(), 0644))
	return path
}
