package fs_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tffs "go.trai.ch/tfroot/internal/adapters/fs"
	"go.trai.ch/tfroot/internal/core/domain"
)

func evalDir(t *testing.T, dir string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	return resolved
}

func TestCanonicalizer_ExistingPath(t *testing.T) {
	root := evalDir(t, t.TempDir())
	require.NoError(t, os.MkdirAll(filepath.Join(root, "repo", "src"), 0o750))

	c := tffs.NewCanonicalizer()
	got, err := c.Canonicalize(filepath.Join(root, "repo", "src", "..", ".", "src"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "repo", "src"), got)
}

func TestCanonicalizer_ResolvesSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks require privileges on windows")
	}

	root := evalDir(t, t.TempDir())
	target := filepath.Join(root, "target")
	require.NoError(t, os.Mkdir(target, 0o750))
	link := filepath.Join(root, "link")
	require.NoError(t, os.Symlink(target, link))

	c := tffs.NewCanonicalizer()

	got, err := c.Canonicalize(link)
	require.NoError(t, err)
	assert.Equal(t, target, got)

	t.Run("missing leaf below symlink", func(t *testing.T) {
		got, err := c.Canonicalize(filepath.Join(link, "missing", "file.txt"))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(target, "missing", "file.txt"), got)
	})
}

func TestCanonicalizer_RelativePath(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	c := tffs.NewCanonicalizer()
	got, err := c.Canonicalize(".")
	require.NoError(t, err)
	assert.Equal(t, evalDir(t, wd), got)
}

func TestCanonicalizer_Errors(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		_, err := tffs.NewCanonicalizer().Canonicalize("")
		require.ErrorIs(t, err, domain.ErrEmptyPath)
	})

	t.Run("resolution failure", func(t *testing.T) {
		denied := errors.New("permission denied")
		c := tffs.NewCanonicalizerWithEval(func(string) (string, error) {
			return "", denied
		})

		_, err := c.Canonicalize("/some/path")
		require.Error(t, err)
		assert.ErrorContains(t, err, denied.Error())
		assert.ErrorContains(t, err, domain.ErrCanonicalizeFailed.Error())
	})

	t.Run("not exist walks up to the root", func(t *testing.T) {
		c := tffs.NewCanonicalizerWithEval(func(string) (string, error) {
			return "", fs.ErrNotExist
		})

		abs, err := filepath.Abs("/nowhere/at/all")
		require.NoError(t, err)

		got, err := c.Canonicalize(abs)
		require.NoError(t, err)
		assert.Equal(t, abs, got)
	})
}

func TestMatcher_IsUnder(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses slash separated paths")
	}

	tests := []struct {
		name          string
		caseSensitive bool
		candidate     string
		ancestor      string
		want          bool
	}{
		{name: "equal", caseSensitive: true, candidate: "/repo", ancestor: "/repo", want: true},
		{name: "child", caseSensitive: true, candidate: "/repo/src", ancestor: "/repo", want: true},
		{name: "deep child", caseSensitive: true, candidate: "/repo/src/a/b.txt", ancestor: "/repo", want: true},
		{name: "sibling with shared prefix", caseSensitive: true, candidate: "/repo2", ancestor: "/repo", want: false},
		{name: "parent is not under child", caseSensitive: true, candidate: "/", ancestor: "/repo", want: false},
		{name: "everything under filesystem root", caseSensitive: true, candidate: "/repo", ancestor: "/", want: true},
		{name: "case differs sensitive", caseSensitive: true, candidate: "/Repo/src", ancestor: "/repo", want: false},
		{name: "case differs insensitive", caseSensitive: false, candidate: "/Repo/src", ancestor: "/repo", want: true},
		{name: "insensitive equal", caseSensitive: false, candidate: "/REPO", ancestor: "/repo", want: true},
		{name: "empty ancestor", caseSensitive: true, candidate: "/repo", ancestor: "", want: false},
		{name: "empty candidate", caseSensitive: true, candidate: "", ancestor: "/", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tffs.NewMatcher(tt.caseSensitive)
			assert.Equal(t, tt.want, m.IsUnder(tt.candidate, tt.ancestor))
			assert.Equal(t, tt.caseSensitive, m.CaseSensitive())
		})
	}
}
