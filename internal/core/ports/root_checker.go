package ports

import "context"

// RootChecker classifies paths relative to workspace mappings.
//
//go:generate go run go.uber.org/mock/mockgen -source=root_checker.go -destination=mocks/mock_root_checker.go -package=mocks
type RootChecker interface {
	// IsRoot reports whether path is exactly the local root of a workspace mapping.
	// It never fails; unresolvable paths are reported as not being a root.
	IsRoot(ctx context.Context, path string) bool

	// IsVCSDir reports whether the final element of path is the TFVC metadata directory.
	IsVCSDir(path string) bool

	// SupportedVCS returns the identity token of the handled version control system.
	SupportedVCS() string
}
