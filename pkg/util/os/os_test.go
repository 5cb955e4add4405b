package os_test

import (
	"os"
	"path/filepath"
	"testing"

	osutils "github.com/ostafen/gifkit/pkg/util/os"
	"github.com/stretchr/testify/require"
)

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")

	created, err := osutils.EnsureDir(dir, true)
	require.NoError(t, err)
	require.True(t, created)

	created, err = osutils.EnsureDir(dir, true)
	require.NoError(t, err)
	require.False(t, created)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "frame_000.gif"), []byte("GIF"), 0644))

	_, err = osutils.EnsureDir(dir, true)
	require.ErrorContains(t, err, "is not empty")

	created, err = osutils.EnsureDir(dir, false)
	require.NoError(t, err)
	require.False(t, created)
}

func TestEnsureDirOnFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	_, err := osutils.EnsureDir(path, false)
	require.ErrorContains(t, err, "is not a directory")
}

func TestIsDirEmpty(t *testing.T) {
	dir := t.TempDir()

	empty, err := osutils.IsDirEmpty(dir)
	require.NoError(t, err)
	require.True(t, empty)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "x"), nil, 0644))
	empty, err = osutils.IsDirEmpty(dir)
	require.NoError(t, err)
	require.False(t, empty)
}
