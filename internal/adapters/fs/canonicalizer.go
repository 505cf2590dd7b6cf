// Package fs provides filesystem backed path adapters.
package fs

import (
	"errors"
	"io/fs"
	"path/filepath"

	"go.trai.ch/tfroot/internal/core/domain"
	"go.trai.ch/tfroot/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Canonicalizer = (*Canonicalizer)(nil)

// Canonicalizer implements ports.Canonicalizer using filepath.Abs and filepath.EvalSymlinks.
//
// Paths that do not exist yet are resolved through their deepest existing ancestor, so
// "/link/missing" becomes "/target/missing". Any other resolution error (permission
// denied, symlink loops) is reported.
type Canonicalizer struct {
	evalSymlinks func(string) (string, error)
}

// NewCanonicalizer creates a new Canonicalizer.
func NewCanonicalizer() *Canonicalizer {
	return &Canonicalizer{evalSymlinks: filepath.EvalSymlinks}
}

// Canonicalize returns the absolute, symlink-resolved, cleaned form of raw.
func (c *Canonicalizer) Canonicalize(raw string) (string, error) {
	if raw == "" {
		return "", domain.ErrEmptyPath
	}

	abs, err := filepath.Abs(raw)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrCanonicalizeFailed.Error()), "path", raw)
	}

	resolved, err := c.resolve(abs)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrCanonicalizeFailed.Error()), "path", raw)
	}
	return resolved, nil
}

func (c *Canonicalizer) resolve(abs string) (string, error) {
	resolved, err := c.evalSymlinks(abs)
	if err == nil {
		return resolved, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}

	parent := filepath.Dir(abs)
	if parent == abs {
		return abs, nil
	}

	resolvedParent, err := c.resolve(parent)
	if err != nil {
		return "", err
	}
	return filepath.Join(resolvedParent, filepath.Base(abs)), nil
}
