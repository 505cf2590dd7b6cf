package config

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/tfroot/internal/adapters/logger"
	"go.trai.ch/tfroot/internal/core/domain"
	"go.trai.ch/tfroot/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the config loader Graft node.
	NodeID graft.ID = "adapter.config_loader"
	// ConfigNodeID is the unique identifier for the resolved configuration Graft node.
	ConfigNodeID graft.ID = "adapter.config"
)

// logConfigurer is implemented by loggers that honour the log section of the config.
type logConfigurer interface {
	Configure(cfg domain.LogConfig)
}

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})

	graft.Register(graft.Node[*domain.Config]{
		ID:        ConfigNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*domain.Config, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			cwd, err := os.Getwd()
			if err != nil {
				return nil, err
			}
			cfg, err := loader.Load(cwd)
			if err != nil {
				return nil, err
			}

			if lc, ok := log.(logConfigurer); ok {
				lc.Configure(cfg.Log)
			}
			return cfg, nil
		},
	})
}
