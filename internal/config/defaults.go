package config

import (
	"os"
	"path/filepath"
	"time"
)

// Default values
const (
	// Git defaults
	DefaultGitBackend   = BackendExec
	DefaultGitBinary    = "git"
	DefaultCloneDepth   = 1
	DefaultCloneTimeout = 10 * time.Minute

	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"
)

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".repoextract"
	}
	return filepath.Join(home, ".repoextract")
}

// ConfigFilePath returns the config file path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// LogFilePath returns the log file used while the interactive UI owns the terminal
func LogFilePath() string {
	return filepath.Join(ConfigDir(), "repoextract.log")
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Git: GitConfig{
			Backend: DefaultGitBackend,
			Binary:  DefaultGitBinary,
			Depth:   DefaultCloneDepth,
			Timeout: DefaultCloneTimeout,
		},
		Workspace: WorkspaceConfig{
			BaseDir: "",
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
			File:   LogFilePath(),
		},
	}
}
