package rootcheck

import (
	"context"

	"github.com/grindlemire/graft"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/tfroot/internal/adapters/fs"
	"go.trai.ch/tfroot/internal/adapters/logger"
	"go.trai.ch/tfroot/internal/adapters/telemetry"
	"go.trai.ch/tfroot/internal/adapters/workspace"
	"go.trai.ch/tfroot/internal/core/ports"
)

// NodeID is the unique identifier for the root checker Graft node.
const NodeID graft.ID = "engine.rootcheck"

func init() {
	graft.Register(graft.Node[ports.RootChecker]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			workspace.NodeID,
			fs.CanonicalizerNodeID,
			fs.MatcherNodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (ports.RootChecker, error) {
			provider, err := graft.Dep[ports.WorkspaceProvider](ctx)
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
			tracer, err := graft.Dep[trace.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return NewChecker(provider, canonicalizer, matcher, log, tracer), nil
		},
	})
}
