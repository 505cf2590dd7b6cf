package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"go.trai.ch/tfroot/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// ScanOptions configures root discovery.
// A negative MaxDepth, a non-positive Concurrency and a nil Skip fall back to the
// configured scan settings.
type ScanOptions struct {
	// MaxDepth bounds how many directory levels below the start are visited.
	MaxDepth int
	// Concurrency bounds the number of directories probed at once.
	Concurrency int
	// Ancestors also probes every parent of the start directory.
	Ancestors bool
	// Skip lists directory name patterns that are never entered.
	Skip []string
}

// Scan discovers mapping roots at or below dir.
//
// Directories are visited breadth first so that a found root shadows everything below it;
// the walk never descends into a root. Directories named like the metadata directory and
// skipped names are not entered, and symbolic links are not followed. The result is sorted.
func (a *App) Scan(ctx context.Context, dir string, opts ScanOptions) ([]string, error) {
	opts = a.resolveScanOptions(opts)

	start, err := filepath.Abs(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrScanFailed.Error()), "dir", dir)
	}
	info, err := os.Stat(start)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrScanFailed.Error()), "dir", dir)
	}
	if !info.IsDir() {
		return nil, zerr.With(zerr.With(domain.ErrScanFailed, "dir", dir), "reason", "not a directory")
	}

	var (
		mu    sync.Mutex
		roots []string
	)
	level := []string{start}

	for depth := 0; len(level) > 0 && depth <= opts.MaxDepth; depth++ {
		var next []string

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(opts.Concurrency)

		for _, candidate := range level {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				if a.checker.IsRoot(gctx, candidate) {
					mu.Lock()
					roots = append(roots, candidate)
					mu.Unlock()
					return nil
				}
				if depth == opts.MaxDepth {
					return nil
				}
				children := a.childDirs(candidate, opts.Skip)
				mu.Lock()
				next = append(next, children...)
				mu.Unlock()
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrScanFailed.Error()), "dir", dir)
		}

		level = next
	}

	if opts.Ancestors {
		for parent := filepath.Dir(start); ; parent = filepath.Dir(parent) {
			if err := ctx.Err(); err != nil {
				return nil, zerr.With(zerr.Wrap(err, domain.ErrScanFailed.Error()), "dir", dir)
			}
			if a.checker.IsRoot(ctx, parent) {
				roots = append(roots, parent)
			}
			if filepath.Dir(parent) == parent {
				break
			}
		}
	}

	slices.Sort(roots)
	roots = slices.Compact(roots)
	a.logger.Debug(fmt.Sprintf("scan of %s found %d mapping roots", start, len(roots)))
	return roots, nil
}

// childDirs lists the subdirectories of dir that the scan may enter.
// Unreadable directories are logged and treated as empty.
func (a *App) childDirs(dir string, skip []string) []string {
	dirs, err := a.dirs.ListDirs(dir, skip)
	if err != nil {
		a.logger.Warn(fmt.Sprintf("skipping unreadable directory %s: %v", dir, err))
		return nil
	}

	out := dirs[:0]
	for _, d := range dirs {
		if !a.checker.IsVCSDir(d) {
			out = append(out, d)
		}
	}
	return out
}

func (a *App) resolveScanOptions(opts ScanOptions) ScanOptions {
	if opts.MaxDepth < 0 {
		opts.MaxDepth = a.scan.MaxDepth
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = a.scan.Concurrency
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = domain.DefaultScanConcurrency
	}
	if opts.Skip == nil {
		opts.Skip = a.scan.Skip
	}
	return opts
}
