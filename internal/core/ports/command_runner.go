package ports

import (
	"context"

	"go.trai.ch/tfroot/internal/core/domain"
)

// CommandRunner runs external programs and captures their output.
//
//go:generate go run go.uber.org/mock/mockgen -source=command_runner.go -destination=mocks/mock_command_runner.go -package=mocks
type CommandRunner interface {
	// Run executes name with args and waits for it to exit.
	// A non-zero exit status is reported in the result, not as an error.
	Run(ctx context.Context, name string, args ...string) (domain.CommandResult, error)
}
