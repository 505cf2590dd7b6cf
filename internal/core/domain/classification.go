package domain

// Classification is the cached verdict for a canonical path.
type Classification int

const (
	// MappingRoot means the path is exactly the local root of a workspace mapping.
	MappingRoot Classification = iota + 1
	// NotUnderVCS means the path has no enclosing workspace.
	NotUnderVCS
	// OutsideMappings means the path has an enclosing workspace but lies outside all of
	// its mappings. It only answers queries for the exact path.
	OutsideMappings
)

// String returns the human readable name of the classification.
func (c Classification) String() string {
	switch c {
	case MappingRoot:
		return "mapping-root"
	case NotUnderVCS:
		return "not-under-vcs"
	case OutsideMappings:
		return "outside-mappings"
	default:
		return "unknown"
	}
}

// RootResult is the answer to a single root query.
type RootResult struct {
	Path string `json:"path"`
	Root bool   `json:"root"`
}

// ControlDirResult reports whether a path names the version control metadata directory.
type ControlDirResult struct {
	Path       string `json:"path"`
	ControlDir bool   `json:"control_dir"`
}
