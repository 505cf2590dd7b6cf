package domain

// Mapping binds a server path to a local path inside a workspace.
type Mapping struct {
	ServerPath string
	LocalPath  string
	// Cloaked mappings exclude a server path and have no local path.
	Cloaked bool
}

// Workspace is a named set of mappings on a collection.
type Workspace struct {
	Name       string
	Owner      string
	Collection string
	Mappings   []Mapping
}

// LocalRoots returns the local paths of every non-cloaked mapping.
func (w *Workspace) LocalRoots() []string {
	if w == nil {
		return nil
	}
	roots := make([]string, 0, len(w.Mappings))
	for _, m := range w.Mappings {
		if m.Cloaked || m.LocalPath == "" {
			continue
		}
		roots = append(roots, m.LocalPath)
	}
	return roots
}
