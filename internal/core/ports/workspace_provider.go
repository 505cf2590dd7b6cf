// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/tfroot/internal/core/domain"
)

// WorkspaceProvider finds the workspace enclosing a path.
//
//go:generate go run go.uber.org/mock/mockgen -source=workspace_provider.go -destination=mocks/mock_workspace_provider.go -package=mocks
type WorkspaceProvider interface {
	// LookupWorkspace returns the workspace whose mappings enclose the canonical path.
	//
	// A nil workspace with a nil error means no enclosing workspace exists; that is a
	// regular answer, not a failure. An error means the provider could not be asked.
	LookupWorkspace(ctx context.Context, canonicalPath string) (*domain.Workspace, error)
}
