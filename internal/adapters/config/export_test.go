package config

import "go.trai.ch/tfroot/internal/core/ports"

// NewLoaderWithEnv builds a Loader with substitute environment lookups.
func NewLoaderWithEnv(logger ports.Logger, getenv func(string) string, userConfigDir func() (string, error)) *Loader {
	return &Loader{
		Logger:        logger,
		getenv:        getenv,
		userConfigDir: userConfigDir,
	}
}
