package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
)

const (
	// ProjectConfigFile is the name of the project-level config file
	ProjectConfigFile = "deltasim.yaml"
	// UserConfigDir is the directory for user-level config
	UserConfigDir = ".config/deltasim"
	// UserConfigFile is the name of the user-level config file
	UserConfigFile = "config.yaml"
)

// Environment overrides, applied after every file.
const (
	EnvVariant         = "DELTASIM_VARIANT"
	EnvFallback        = "DELTASIM_FALLBACK"
	EnvPerturbFriction = "DELTASIM_PERTURB_FRICTION"
)

// Loader handles configuration loading with layered precedence.
type Loader struct {
	logger  *slog.Logger
	homeDir string
	workDir string
	getenv  func(string) string
}

// NewLoader creates a new configuration loader.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	home, _ := os.UserHomeDir()
	wd, _ := os.Getwd()
	return &Loader{
		logger:  logger,
		homeDir: home,
		workDir: wd,
		getenv:  os.Getenv,
	}
}

// Load loads configuration with layered precedence:
// 1. Default config
// 2. User config (~/.config/deltasim/config.yaml)
// 3. Project config (deltasim.yaml in the working directory)
// 4. Explicit path, if non-empty (must exist)
// 5. Environment variables
func (l *Loader) Load(explicitPath string) (*Config, error) {
	cfg := DefaultConfig()

	if l.homeDir != "" {
		userPath := filepath.Join(l.homeDir, UserConfigDir, UserConfigFile)
		l.mergeOptional(cfg, userPath, "user")
	}

	if l.workDir != "" {
		projectPath := filepath.Join(l.workDir, ProjectConfigFile)
		l.mergeOptional(cfg, projectPath, "project")
	}

	if explicitPath != "" {
		if err := cfg.mergeFile(explicitPath); err != nil {
			return nil, err
		}
		l.logger.Debug("Loaded config", slog.String("path", explicitPath))
	}

	if err := l.applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (l *Loader) mergeOptional(cfg *Config, path, layer string) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		l.logger.Debug("No config found", slog.String("layer", layer), slog.String("path", path))
		return
	}
	if err := cfg.mergeFile(path); err != nil {
		l.logger.Warn("Failed to load config", slog.String("layer", layer), slog.String("path", path), slog.String("error", err.Error()))
		return
	}
	l.logger.Debug("Loaded config", slog.String("layer", layer), slog.String("path", path))
}

func (l *Loader) applyEnv(cfg *Config) error {
	if v := l.getenv(EnvVariant); v != "" {
		cfg.Engine.Variant = v
	}
	if v := l.getenv(EnvFallback); v != "" {
		cfg.Engine.Fallback = v
	}
	if v := l.getenv(EnvPerturbFriction); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalid, EnvPerturbFriction, err)
		}
		cfg.Engine.PerturbFriction = &on
	}
	return nil
}
