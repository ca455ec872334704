package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/quantmind-br/repoextract/internal/config"
)

// ConfigValues holds form values that map to Config struct.
// Numeric and duration fields are stored as strings for form editing.
type ConfigValues struct {
	GitBackend string
	GitBinary  string
	GitDepth   string
	GitTimeout string

	WorkspaceBaseDir string

	LogLevel  string
	LogFormat string
	LogFile   string
}

// FromConfig converts a Config to ConfigValues for form editing
func FromConfig(cfg *config.Config) *ConfigValues {
	if cfg == nil {
		cfg = config.Default()
	}
	return &ConfigValues{
		GitBackend: cfg.Git.Backend,
		GitBinary:  cfg.Git.Binary,
		GitDepth:   strconv.Itoa(cfg.Git.Depth),
		GitTimeout: formatDuration(cfg.Git.Timeout),

		WorkspaceBaseDir: cfg.Workspace.BaseDir,

		LogLevel:  cfg.Logging.Level,
		LogFormat: cfg.Logging.Format,
		LogFile:   cfg.Logging.File,
	}
}

// ToConfig converts ConfigValues back to a Config struct
func (v *ConfigValues) ToConfig() (*config.Config, error) {
	depth, err := parseIntOrDefault(v.GitDepth, config.DefaultCloneDepth)
	if err != nil {
		return nil, fmt.Errorf("invalid git.depth: %w", err)
	}
	if depth < 0 {
		return nil, fmt.Errorf("invalid git.depth: %w", ErrNegativeInt)
	}

	timeout, err := parseDurationOrDefault(v.GitTimeout, config.DefaultCloneTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid git.timeout: %w", err)
	}

	backend := strings.ToLower(strings.TrimSpace(v.GitBackend))
	if backend == "" {
		backend = config.DefaultGitBackend
	}
	if err := ValidateGitBackend(backend); err != nil {
		return nil, err
	}
	if v.LogLevel != "" {
		if err := ValidateLogLevel(v.LogLevel); err != nil {
			return nil, err
		}
	}
	if v.LogFormat != "" {
		if err := ValidateLogFormat(v.LogFormat); err != nil {
			return nil, err
		}
	}

	cfg := &config.Config{
		Git: config.GitConfig{
			Backend: backend,
			Binary:  strings.TrimSpace(v.GitBinary),
			Depth:   depth,
			Timeout: timeout,
		},
		Workspace: config.WorkspaceConfig{
			BaseDir: strings.TrimSpace(v.WorkspaceBaseDir),
		},
		Logging: config.LoggingConfig{
			Level:  v.LogLevel,
			Format: v.LogFormat,
			File:   strings.TrimSpace(v.LogFile),
		},
	}

	return cfg, nil
}

func formatDuration(d time.Duration) string {
	if d == 0 {
		return ""
	}
	return d.String()
}

func parseDurationOrDefault(s string, defaultVal time.Duration) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return defaultVal, nil
	}
	return time.ParseDuration(s)
}

func parseIntOrDefault(s string, defaultVal int) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return defaultVal, nil
	}
	return strconv.Atoi(s)
}
