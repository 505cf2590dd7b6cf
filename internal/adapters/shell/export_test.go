package shell

import "go.trai.ch/tfroot/internal/core/ports"

// NewRunnerWithEnv creates a Runner with a fixed environment.
func NewRunnerWithEnv(logger ports.Logger, env []string) *Runner {
	return &Runner{
		logger:  logger,
		environ: func() []string { return env },
	}
}

// LookPath exposes lookPath for tests.
var LookPath = lookPath
