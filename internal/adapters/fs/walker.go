package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/tfroot/internal/core/ports"
)

var _ ports.DirLister = (*Walker)(nil)

// Walker lists directories for root discovery.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// ListDirs returns the subdirectories of dir in lexical order.
// Symbolic links are not followed, and entries whose name matches a skip pattern are left out.
func (w *Walker) ListDirs(dir string, skip []string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var dirs []string
	for _, e := range entries {
		if !e.IsDir() || w.shouldSkip(e.Name(), skip) {
			continue
		}
		dirs = append(dirs, filepath.Join(dir, e.Name()))
	}
	return dirs, nil
}

// shouldSkip reports whether name matches one of the skip patterns.
func (w *Walker) shouldSkip(name string, skip []string) bool {
	for _, pattern := range skip {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}
