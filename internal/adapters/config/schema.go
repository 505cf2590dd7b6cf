package config

// File represents the structure of the .tfroot.yaml configuration file.
type File struct {
	Provider        string         `yaml:"provider"`
	CaseSensitivity string         `yaml:"case_sensitivity"`
	TF              *TFDTO         `yaml:"tf"`
	Log             *LogDTO        `yaml:"log"`
	Scan            *ScanDTO       `yaml:"scan"`
	Workspaces      []WorkspaceDTO `yaml:"workspaces"`
}

// TFDTO configures the tf command line client.
type TFDTO struct {
	Path    string `yaml:"path"`
	Timeout string `yaml:"timeout"`
}

// LogDTO configures logging.
type LogDTO struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// ScanDTO configures root discovery scans.
type ScanDTO struct {
	Concurrency *int     `yaml:"concurrency"`
	MaxDepth    *int     `yaml:"max_depth"`
	Skip        []string `yaml:"skip"`
}

// WorkspaceDTO declares a workspace for the static provider.
type WorkspaceDTO struct {
	Name       string       `yaml:"name"`
	Owner      string       `yaml:"owner"`
	Collection string       `yaml:"collection"`
	Mappings   []MappingDTO `yaml:"mappings"`
}

// MappingDTO declares a single workspace mapping.
type MappingDTO struct {
	ServerPath string `yaml:"server_path"`
	LocalPath  string `yaml:"local_path"`
	Cloaked    bool   `yaml:"cloaked"`
}
