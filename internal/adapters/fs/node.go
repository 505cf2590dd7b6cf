package fs

import (
	"context"
	"runtime"

	"github.com/grindlemire/graft"
	"go.trai.ch/tfroot/internal/adapters/config"
	"go.trai.ch/tfroot/internal/core/domain"
	"go.trai.ch/tfroot/internal/core/ports"
)

const (
	// CanonicalizerNodeID is the unique identifier for the canonicalizer Graft node.
	CanonicalizerNodeID graft.ID = "adapter.fs.canonicalizer"
	// MatcherNodeID is the unique identifier for the path matcher Graft node.
	MatcherNodeID graft.ID = "adapter.fs.matcher"
	// WalkerNodeID is the unique identifier for the directory walker Graft node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
)

func init() {
	graft.Register(graft.Node[ports.Canonicalizer]{
		ID:        CanonicalizerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Canonicalizer, error) {
			return NewCanonicalizer(), nil
		},
	})

	graft.Register(graft.Node[ports.PathMatcher]{
		ID:        MatcherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID},
		Run: func(ctx context.Context) (ports.PathMatcher, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewMatcher(cfg.CaseSensitivity.Sensitive(runtime.GOOS)), nil
		},
	})

	graft.Register(graft.Node[ports.DirLister]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DirLister, error) {
			return NewWalker(), nil
		},
	})
}
