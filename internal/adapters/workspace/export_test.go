package workspace

import "go.trai.ch/tfroot/internal/core/domain"

// ParseWorkfold exposes parseWorkfold for tests.
func ParseWorkfold(output string) (*domain.Workspace, error) {
	return parseWorkfold(output)
}

// IsNoWorkspace exposes isNoWorkspace for tests.
func IsNoWorkspace(output string) bool {
	return isNoWorkspace(output)
}
