package ports

// Canonicalizer resolves paths to their canonical form.
//
//go:generate go run go.uber.org/mock/mockgen -source=paths.go -destination=mocks/mock_paths.go -package=mocks
type Canonicalizer interface {
	// Canonicalize returns the absolute, symlink-resolved, cleaned form of raw.
	Canonicalize(raw string) (string, error)
}

// PathMatcher tests hierarchical containment of canonical paths.
type PathMatcher interface {
	// IsUnder reports whether candidate equals ancestor or lies below it.
	IsUnder(candidate, ancestor string) bool
}

// DirLister lists directories for root discovery.
type DirLister interface {
	// ListDirs returns the subdirectories of dir, leaving out names matching a skip pattern.
	ListDirs(dir string, skip []string) ([]string, error)
}
