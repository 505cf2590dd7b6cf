package domain

import "go.trai.ch/zerr"

var (
	// ErrEmptyPath is returned when an empty path is given for canonicalization.
	ErrEmptyPath = zerr.New("path is empty")

	// ErrCanonicalizeFailed is returned when a path cannot be resolved to its canonical form.
	ErrCanonicalizeFailed = zerr.New("failed to canonicalize path")

	// ErrWorkspaceLookupFailed is returned when the workspace provider cannot be queried.
	ErrWorkspaceLookupFailed = zerr.New("failed to look up workspace")

	// ErrWorkspaceParseFailed is returned when tf output cannot be parsed.
	ErrWorkspaceParseFailed = zerr.New("failed to parse workspace mappings")

	// ErrUnknownProvider is returned when the configured provider kind is not supported.
	ErrUnknownProvider = zerr.New("unknown workspace provider")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when the config file contains invalid values.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrScanFailed is returned when a root discovery scan cannot complete.
	ErrScanFailed = zerr.New("root scan failed")

	// ErrNoPathsSpecified is returned when a command requires at least one path.
	ErrNoPathsSpecified = zerr.New("no paths specified")

	// ErrNotMappingRoot is returned by check when at least one path is not a mapping root.
	ErrNotMappingRoot = zerr.New("path is not a mapping root")
)
