// Package config provides the configuration loader for tfroot.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/tfroot/internal/core/domain"
	"go.trai.ch/tfroot/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger        ports.Logger
	getenv        func(string) string
	userConfigDir func() (string, error)
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{
		Logger:        logger,
		getenv:        os.Getenv,
		userConfigDir: os.UserConfigDir,
	}
}

// Load discovers and reads the configuration for cwd.
//
// The lookup order is the file named by TFROOT_CONFIG, the nearest .tfroot.yaml in cwd or
// one of its parents, and finally the user level config.yaml. Defaults are returned
// when none exists.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	configPath, err := l.findConfiguration(cwd)
	if err != nil {
		return nil, err
	}
	if configPath == "" {
		l.Logger.Debug("no configuration file found, using defaults")
		return domain.DefaultConfig(), nil
	}

	l.Logger.Debug(fmt.Sprintf("loading configuration from %s", configPath))
	return l.LoadFile(configPath)
}

// LoadFile reads the configuration from an explicit path.
func (l *Loader) LoadFile(configPath string) (*domain.Config, error) {
	var file File
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	cfg, err := l.resolve(configPath, &file)
	if err != nil {
		return nil, zerr.With(err, "path", configPath)
	}
	return cfg, nil
}

func (l *Loader) findConfiguration(cwd string) (string, error) {
	if explicit := l.getenv(domain.ConfigEnvVar); explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), domain.ConfigEnvVar, explicit)
		}
		return explicit, nil
	}

	currentDir, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	configDir, err := l.userConfigDir()
	if err != nil {
		// No home directory is not an error, there is just no user config.
		return "", nil
	}
	userConfig := domain.UserConfigPath(configDir)
	if _, err := os.Stat(userConfig); err == nil {
		return userConfig, nil
	}

	return "", nil
}

func (l *Loader) resolve(configPath string, file *File) (*domain.Config, error) {
	cfg := domain.DefaultConfig()
	cfg.Source = configPath

	switch kind := domain.ProviderKind(file.Provider); kind {
	case "":
	case domain.ProviderTF, domain.ProviderStatic:
		cfg.Provider = kind
	default:
		return nil, zerr.With(domain.ErrUnknownProvider, "provider", file.Provider)
	}

	switch cs := domain.CaseSensitivity(file.CaseSensitivity); cs {
	case "":
	case domain.CaseAuto, domain.CaseSensitive, domain.CaseInsensitive:
		cfg.CaseSensitivity = cs
	default:
		return nil, zerr.With(domain.ErrInvalidConfig, "case_sensitivity", file.CaseSensitivity)
	}

	if err := resolveTF(cfg, file.TF); err != nil {
		return nil, err
	}
	if err := resolveLog(cfg, file.Log); err != nil {
		return nil, err
	}
	if err := resolveScan(cfg, file.Scan); err != nil {
		return nil, err
	}

	workspaces, err := resolveWorkspaces(filepath.Dir(configPath), file.Workspaces)
	if err != nil {
		return nil, err
	}
	cfg.Workspaces = workspaces

	if cfg.Provider == domain.ProviderStatic && len(cfg.Workspaces) == 0 {
		l.Logger.Warn(fmt.Sprintf("static provider configured in %s without workspaces", configPath))
	}

	return cfg, nil
}

func resolveTF(cfg *domain.Config, dto *TFDTO) error {
	if dto == nil {
		return nil
	}
	if dto.Path != "" {
		cfg.TF.Path = dto.Path
	}
	if dto.Timeout != "" {
		timeout, err := time.ParseDuration(dto.Timeout)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrInvalidConfig.Error()), "tf.timeout", dto.Timeout)
		}
		if timeout <= 0 {
			return zerr.With(domain.ErrInvalidConfig, "tf.timeout", dto.Timeout)
		}
		cfg.TF.Timeout = timeout
	}
	return nil
}

func resolveLog(cfg *domain.Config, dto *LogDTO) error {
	if dto == nil {
		return nil
	}
	switch dto.Level {
	case "":
	case "debug", "info", "warn", "error":
		cfg.Log.Level = dto.Level
	default:
		return zerr.With(domain.ErrInvalidConfig, "log.level", dto.Level)
	}
	cfg.Log.JSON = dto.JSON
	return nil
}

func resolveScan(cfg *domain.Config, dto *ScanDTO) error {
	if dto == nil {
		return nil
	}
	if dto.Concurrency != nil {
		if *dto.Concurrency < 1 {
			return zerr.With(domain.ErrInvalidConfig, "scan.concurrency", *dto.Concurrency)
		}
		cfg.Scan.Concurrency = *dto.Concurrency
	}
	if dto.MaxDepth != nil {
		if *dto.MaxDepth < 0 {
			return zerr.With(domain.ErrInvalidConfig, "scan.max_depth", *dto.MaxDepth)
		}
		cfg.Scan.MaxDepth = *dto.MaxDepth
	}
	if dto.Skip != nil {
		cfg.Scan.Skip = dto.Skip
	}
	return nil
}

func resolveWorkspaces(configDir string, dtos []WorkspaceDTO) ([]domain.Workspace, error) {
	workspaces := make([]domain.Workspace, 0, len(dtos))
	for i, dto := range dtos {
		if dto.Name == "" {
			return nil, zerr.With(domain.ErrInvalidConfig, "workspace", i)
		}

		ws := domain.Workspace{
			Name:       dto.Name,
			Owner:      dto.Owner,
			Collection: dto.Collection,
			Mappings:   make([]domain.Mapping, 0, len(dto.Mappings)),
		}
		for _, m := range dto.Mappings {
			if !m.Cloaked && m.LocalPath == "" {
				return nil, zerr.With(zerr.With(domain.ErrInvalidConfig, "workspace", dto.Name), "server_path", m.ServerPath)
			}
			ws.Mappings = append(ws.Mappings, domain.Mapping{
				ServerPath: m.ServerPath,
				LocalPath:  resolveLocalPath(configDir, m.LocalPath),
				Cloaked:    m.Cloaked,
			})
		}
		workspaces = append(workspaces, ws)
	}
	return workspaces, nil
}

func resolveLocalPath(configDir, localPath string) string {
	if localPath == "" {
		return ""
	}
	if filepath.IsAbs(localPath) {
		return filepath.Clean(localPath)
	}
	return filepath.Clean(filepath.Join(configDir, localPath))
}

// readAndUnmarshalYAML reads a YAML file and strictly unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is discovered or supplied by the user
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	dec := yaml.NewDecoder(bytes.NewReader(configFile))
	dec.KnownFields(true)
	if parseErr := dec.Decode(target); parseErr != nil && !errors.Is(parseErr, io.EOF) {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
