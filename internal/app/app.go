// Package app implements the application layer for tfroot.
package app

import (
	"context"
	"fmt"

	"go.trai.ch/tfroot/internal/core/domain"
	"go.trai.ch/tfroot/internal/core/ports"
)

// verbositySetter is implemented by loggers that can switch debug output on and off.
type verbositySetter interface {
	SetVerbose(verbose bool)
}

// App represents the main application logic.
type App struct {
	checker ports.RootChecker
	dirs    ports.DirLister
	logger  ports.Logger
	scan    domain.ScanConfig
}

// New creates a new App instance.
func New(checker ports.RootChecker, dirs ports.DirLister, log ports.Logger, cfg *domain.Config) *App {
	scan := domain.DefaultConfig().Scan
	if cfg != nil {
		scan = cfg.Scan
	}
	return &App{
		checker: checker,
		dirs:    dirs,
		logger:  log,
		scan:    scan,
	}
}

// SetVerbose enables debug logging when the logger supports it.
func (a *App) SetVerbose(verbose bool) {
	if v, ok := a.logger.(verbositySetter); ok {
		v.SetVerbose(verbose)
	}
}

// Check classifies each path and returns the verdicts in argument order.
func (a *App) Check(ctx context.Context, paths []string) ([]domain.RootResult, error) {
	if len(paths) == 0 {
		return nil, domain.ErrNoPathsSpecified
	}

	results := make([]domain.RootResult, 0, len(paths))
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		results = append(results, domain.RootResult{
			Path: p,
			Root: a.checker.IsRoot(ctx, p),
		})
	}

	roots := 0
	for _, r := range results {
		if r.Root {
			roots++
		}
	}
	a.logger.Debug(fmt.Sprintf("%d of %d paths are mapping roots", roots, len(results)))
	return results, nil
}

// IsVCSDir reports for each path whether it names the version control metadata directory.
func (a *App) IsVCSDir(paths []string) ([]domain.ControlDirResult, error) {
	if len(paths) == 0 {
		return nil, domain.ErrNoPathsSpecified
	}

	results := make([]domain.ControlDirResult, len(paths))
	for i, p := range paths {
		results[i] = domain.ControlDirResult{Path: p, ControlDir: a.checker.IsVCSDir(p)}
	}
	return results, nil
}

// SupportedVCS returns the identity token of the handled version control system.
func (a *App) SupportedVCS() string {
	return a.checker.SupportedVCS()
}
