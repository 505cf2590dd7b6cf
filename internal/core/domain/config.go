package domain

import "time"

// ProviderKind selects the workspace provider implementation.
type ProviderKind string

const (
	// ProviderTF asks the tf command line client for workspace mappings.
	ProviderTF ProviderKind = "tf"
	// ProviderStatic serves workspaces declared in the configuration file.
	ProviderStatic ProviderKind = "static"
)

// CaseSensitivity controls how path containment compares path elements.
type CaseSensitivity string

const (
	// CaseAuto follows the host operating system.
	CaseAuto CaseSensitivity = "auto"
	// CaseSensitive compares path elements byte for byte.
	CaseSensitive CaseSensitivity = "sensitive"
	// CaseInsensitive folds case before comparing path elements.
	CaseInsensitive CaseSensitivity = "insensitive"
)

// Sensitive resolves the setting against the given GOOS value.
func (c CaseSensitivity) Sensitive(goos string) bool {
	switch c {
	case CaseSensitive:
		return true
	case CaseInsensitive:
		return false
	default:
		return goos != "darwin" && goos != "windows"
	}
}

// Config is the resolved application configuration.
type Config struct {
	// Source is the file the configuration was read from, empty for defaults.
	Source          string
	Provider        ProviderKind
	CaseSensitivity CaseSensitivity
	TF              TFConfig
	Log             LogConfig
	Scan            ScanConfig
	// Workspaces are only consulted by the static provider. Local paths are absolute.
	Workspaces []Workspace
}

// TFConfig configures the tf command line client.
type TFConfig struct {
	Path    string
	Timeout time.Duration
}

// LogConfig configures logging output.
type LogConfig struct {
	Level string
	JSON  bool
}

// ScanConfig configures root discovery scans.
type ScanConfig struct {
	Concurrency int
	MaxDepth    int
	Skip        []string
}

// DefaultConfig returns the configuration used when no file is found.
func DefaultConfig() *Config {
	return &Config{
		Provider:        ProviderTF,
		CaseSensitivity: CaseAuto,
		TF: TFConfig{
			Path:    DefaultTFPath,
			Timeout: DefaultTFTimeout,
		},
		Log: LogConfig{
			Level: "info",
		},
		Scan: ScanConfig{
			Concurrency: DefaultScanConcurrency,
			MaxDepth:    DefaultScanMaxDepth,
			Skip:        DefaultScanSkip(),
		},
	}
}
