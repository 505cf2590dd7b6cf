package workspace

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tfroot/internal/adapters/config"
	"go.trai.ch/tfroot/internal/adapters/fs"
	"go.trai.ch/tfroot/internal/adapters/logger"
	"go.trai.ch/tfroot/internal/adapters/shell"
	"go.trai.ch/tfroot/internal/core/domain"
	"go.trai.ch/tfroot/internal/core/ports"
	"go.trai.ch/zerr"
)

// NodeID is the unique identifier for the workspace provider Graft node.
const NodeID graft.ID = "adapter.workspace"

func init() {
	graft.Register(graft.Node[ports.WorkspaceProvider]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.ConfigNodeID,
			shell.NodeID,
			fs.CanonicalizerNodeID,
			fs.MatcherNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (ports.WorkspaceProvider, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			canonicalizer, err := graft.Dep[ports.Canonicalizer](ctx)
			if err != nil {
				return nil, err
			}
			matcher, err := graft.Dep[ports.PathMatcher](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(cfg, runner, canonicalizer, matcher, log)
		},
	})
}

// New returns the provider selected by cfg.
func New(
	cfg *domain.Config,
	runner ports.CommandRunner,
	canonicalizer ports.Canonicalizer,
	matcher ports.PathMatcher,
	log ports.Logger,
) (ports.WorkspaceProvider, error) {
	switch cfg.Provider {
	case domain.ProviderTF, "":
		return NewTFCLI(runner, log, cfg.TF), nil
	case domain.ProviderStatic:
		return NewStatic(cfg.Workspaces, canonicalizer, matcher, log), nil
	default:
		return nil, zerr.With(domain.ErrUnknownProvider, "provider", string(cfg.Provider))
	}
}
