package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tfroot/internal/adapters/fs"
)

func TestWalker_ListDirs(t *testing.T) {
	t.Parallel()

	// tmp/
	//   .git/
	//   build-out/
	//   src/
	//   vendor/
	//   link -> src
	//   README.md
	tmpDir := t.TempDir()
	for _, d := range []string{".git", "build-out", "src", "vendor"} {
		require.NoError(t, os.Mkdir(filepath.Join(tmpDir, d), 0o750))
	}
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "README.md"), []byte("# hi"), 0o600))
	require.NoError(t, os.Symlink(filepath.Join(tmpDir, "src"), filepath.Join(tmpDir, "link")))

	dirs, err := fs.NewWalker().ListDirs(tmpDir, []string{".git", "build-*"})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(tmpDir, "src"),
		filepath.Join(tmpDir, "vendor"),
	}, dirs)
}

func TestWalker_ListDirs_Missing(t *testing.T) {
	t.Parallel()

	_, err := fs.NewWalker().ListDirs(filepath.Join(t.TempDir(), "missing"), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
