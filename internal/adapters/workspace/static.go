package workspace

import (
	"context"
	"path/filepath"

	"go.trai.ch/tfroot/internal/core/domain"
	"go.trai.ch/tfroot/internal/core/ports"
)

var _ ports.WorkspaceProvider = (*Static)(nil)

// Static implements ports.WorkspaceProvider over workspaces declared in configuration.
type Static struct {
	workspaces []domain.Workspace
	locals     [][]string
	matcher    ports.PathMatcher
}

// NewStatic creates a provider for the given workspaces.
// Mapping local paths are canonicalized once; paths that fail to resolve are cleaned and
// used as written.
func NewStatic(
	workspaces []domain.Workspace,
	canonicalizer ports.Canonicalizer,
	matcher ports.PathMatcher,
	logger ports.Logger,
) *Static {
	locals := make([][]string, len(workspaces))
	for i := range workspaces {
		locals[i] = make([]string, len(workspaces[i].Mappings))
		for j, m := range workspaces[i].Mappings {
			if m.Cloaked || m.LocalPath == "" {
				continue
			}
			resolved, err := canonicalizer.Canonicalize(m.LocalPath)
			if err != nil {
				logger.Warn("mapping " + m.LocalPath + " of workspace " + workspaces[i].Name + " could not be resolved")
				resolved = filepath.Clean(m.LocalPath)
			}
			locals[i][j] = resolved
		}
	}
	return &Static{
		workspaces: workspaces,
		locals:     locals,
		matcher:    matcher,
	}
}

// LookupWorkspace returns the first workspace with a non-cloaked mapping enclosing the path.
func (p *Static) LookupWorkspace(_ context.Context, canonicalPath string) (*domain.Workspace, error) {
	for i := range p.workspaces {
		for _, local := range p.locals[i] {
			if local == "" {
				continue
			}
			if p.matcher.IsUnder(canonicalPath, local) {
				ws := p.workspaces[i]
				ws.Mappings = append([]domain.Mapping(nil), ws.Mappings...)
				return &ws, nil
			}
		}
	}
	return nil, nil
}
