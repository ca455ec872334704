package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/quantmind-br/repoextract/internal/domain"
)

// Git backends
const (
	BackendExec  = "exec"
	BackendGoGit = "go-git"
	BackendAuto  = "auto"
)

// Config represents the application configuration
type Config struct {
	Git       GitConfig       `mapstructure:"git" yaml:"git"`
	Workspace WorkspaceConfig `mapstructure:"workspace" yaml:"workspace"`
	Logging   LoggingConfig   `mapstructure:"logging" yaml:"logging"`
}

// GitConfig contains repository fetch settings
type GitConfig struct {
	Backend string        `mapstructure:"backend" yaml:"backend"`
	Binary  string        `mapstructure:"binary" yaml:"binary"`
	Depth   int           `mapstructure:"depth" yaml:"depth"` // 0 clones full history
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// WorkspaceConfig contains temporary workspace settings
type WorkspaceConfig struct {
	BaseDir string `mapstructure:"base_dir" yaml:"base_dir"` // empty uses the system temp dir
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
	File   string `mapstructure:"file" yaml:"file"`
}

// Validate validates the configuration
func (c *Config) Validate() error {
	c.Git.Backend = strings.ToLower(strings.TrimSpace(c.Git.Backend))
	switch c.Git.Backend {
	case "":
		c.Git.Backend = DefaultGitBackend
	case BackendExec, BackendGoGit, BackendAuto:
	default:
		return domain.NewValidationError("git.backend", fmt.Sprintf("unknown backend %q: must be %s, %s or %s",
			c.Git.Backend, BackendExec, BackendGoGit, BackendAuto))
	}
	if strings.TrimSpace(c.Git.Binary) == "" {
		c.Git.Binary = DefaultGitBinary
	}
	if c.Git.Depth < 0 {
		c.Git.Depth = DefaultCloneDepth
	}
	if c.Git.Timeout < time.Second {
		c.Git.Timeout = DefaultCloneTimeout
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}
	return nil
}

// MarshalYAML writes the timeout as a duration string ("10m0s")
func (g GitConfig) MarshalYAML() (interface{}, error) {
	return struct {
		Backend string `yaml:"backend"`
		Binary  string `yaml:"binary"`
		Depth   int    `yaml:"depth"`
		Timeout string `yaml:"timeout"`
	}{
		Backend: g.Backend,
		Binary:  g.Binary,
		Depth:   g.Depth,
		Timeout: g.Timeout.String(),
	}, nil
}
