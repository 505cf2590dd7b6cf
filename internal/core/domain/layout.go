package domain

import (
	"path/filepath"
	"time"
)

const (
	// VCSKey identifies the version control system handled by this module.
	VCSKey = "TFVC"

	// ControlDirName is the name of the TFVC metadata directory in local workspaces.
	ControlDirName = "$tf"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = ".tfroot.yaml"

	// ConfigEnvVar names the environment variable pointing at an explicit config file.
	ConfigEnvVar = "TFROOT_CONFIG"

	// UserConfigDirName is the directory under the user config dir holding config.yaml.
	UserConfigDirName = "tfroot"

	// UserConfigFileName is the name of the user level configuration file.
	UserConfigFileName = "config.yaml"

	// DefaultTFPath is the executable used when tf.path is not configured.
	DefaultTFPath = "tf"

	// DefaultTFTimeout bounds a single tf invocation.
	DefaultTFTimeout = 30 * time.Second

	// DefaultScanConcurrency is the number of directories checked in parallel during a scan.
	DefaultScanConcurrency = 8

	// DefaultScanMaxDepth is how many directory levels a scan descends.
	DefaultScanMaxDepth = 4
)

// DefaultScanSkip lists directory names a scan never descends into.
func DefaultScanSkip() []string {
	return []string{".git", ".idea", "node_modules"}
}

// UserConfigPath returns the user level configuration path under configDir.
func UserConfigPath(configDir string) string {
	return filepath.Join(configDir, UserConfigDirName, UserConfigFileName)
}
