// Package workspace provides the workspace provider adapters.
package workspace

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.trai.ch/tfroot/internal/core/domain"
	"go.trai.ch/tfroot/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.WorkspaceProvider = (*TFCLI)(nil)

// TFCLI implements ports.WorkspaceProvider by asking the tf command line client.
type TFCLI struct {
	runner  ports.CommandRunner
	logger  ports.Logger
	path    string
	timeout time.Duration
}

// NewTFCLI creates a provider that runs the tf executable at path.
func NewTFCLI(runner ports.CommandRunner, logger ports.Logger, cfg domain.TFConfig) *TFCLI {
	path := cfg.Path
	if path == "" {
		path = domain.DefaultTFPath
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = domain.DefaultTFTimeout
	}
	return &TFCLI{
		runner:  runner,
		logger:  logger,
		path:    path,
		timeout: timeout,
	}
}

// LookupWorkspace runs "tf workfold <path>" and parses the reported mappings.
func (p *TFCLI) LookupWorkspace(ctx context.Context, canonicalPath string) (*domain.Workspace, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	res, err := p.runner.Run(ctx, p.path, "workfold", canonicalPath)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrWorkspaceLookupFailed.Error()), "path", canonicalPath)
	}

	// Mapping lines may contain any text, so stdout of a successful run is never scanned.
	diagnostics := res.Stderr
	if res.ExitCode != 0 {
		diagnostics = res.Combined()
	}
	if isNoWorkspace(diagnostics) {
		p.logger.Debug(fmt.Sprintf("tf reports no workspace for %s", canonicalPath))
		return nil, nil
	}

	if res.ExitCode != 0 {
		err := zerr.With(domain.ErrWorkspaceLookupFailed, "exit_code", res.ExitCode)
		if msg := strings.TrimSpace(res.Stderr); msg != "" {
			err = zerr.With(err, "stderr", msg)
		}
		return nil, zerr.With(err, "path", canonicalPath)
	}

	ws, err := parseWorkfold(res.Stdout)
	if err != nil {
		return nil, zerr.With(err, "path", canonicalPath)
	}
	return ws, nil
}
