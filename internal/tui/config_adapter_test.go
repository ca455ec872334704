package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmind-br/repoextract/internal/config"
)

func TestFromConfig(t *testing.T) {
	cfg := &config.Config{
		Git: config.GitConfig{
			Backend: config.BackendGoGit,
			Binary:  "/usr/local/bin/git",
			Depth:   0,
			Timeout: 5 * time.Minute,
		},
		Workspace: config.WorkspaceConfig{
			BaseDir: "/var/tmp",
		},
		Logging: config.LoggingConfig{
			Level:  "debug",
			Format: "json",
			File:   "/tmp/repoextract.log",
		},
	}

	values := FromConfig(cfg)

	assert.Equal(t, "go-git", values.GitBackend)
	assert.Equal(t, "/usr/local/bin/git", values.GitBinary)
	assert.Equal(t, "0", values.GitDepth)
	assert.Equal(t, "5m0s", values.GitTimeout)
	assert.Equal(t, "/var/tmp", values.WorkspaceBaseDir)
	assert.Equal(t, "debug", values.LogLevel)
	assert.Equal(t, "json", values.LogFormat)
	assert.Equal(t, "/tmp/repoextract.log", values.LogFile)
}

func TestFromConfig_NilUsesDefaults(t *testing.T) {
	values := FromConfig(nil)

	assert.Equal(t, config.DefaultGitBackend, values.GitBackend)
	assert.Equal(t, "1", values.GitDepth)
	assert.Equal(t, "10m0s", values.GitTimeout)
}

func TestToConfig(t *testing.T) {
	values := &ConfigValues{
		GitBackend:       " AUTO ",
		GitBinary:        "git",
		GitDepth:         "3",
		GitTimeout:       "90s",
		WorkspaceBaseDir: " ~/tmp ",
		LogLevel:         "warn",
		LogFormat:        "pretty",
		LogFile:          "~/.repoextract/repoextract.log",
	}

	cfg, err := values.ToConfig()
	require.NoError(t, err)

	assert.Equal(t, config.BackendAuto, cfg.Git.Backend)
	assert.Equal(t, "git", cfg.Git.Binary)
	assert.Equal(t, 3, cfg.Git.Depth)
	assert.Equal(t, 90*time.Second, cfg.Git.Timeout)
	assert.Equal(t, "~/tmp", cfg.Workspace.BaseDir)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "pretty", cfg.Logging.Format)
	assert.Equal(t, "~/.repoextract/repoextract.log", cfg.Logging.File)
}

func TestToConfig_EmptyUsesDefaults(t *testing.T) {
	cfg, err := (&ConfigValues{}).ToConfig()
	require.NoError(t, err)

	assert.Equal(t, config.DefaultGitBackend, cfg.Git.Backend)
	assert.Equal(t, config.DefaultCloneDepth, cfg.Git.Depth)
	assert.Equal(t, config.DefaultCloneTimeout, cfg.Git.Timeout)
}

func TestToConfig_Errors(t *testing.T) {
	tests := []struct {
		name   string
		values ConfigValues
	}{
		{name: "depth_not_a_number", values: ConfigValues{GitDepth: "abc"}},
		{name: "negative_depth", values: ConfigValues{GitDepth: "-2"}},
		{name: "bad_timeout", values: ConfigValues{GitTimeout: "10"}},
		{name: "unknown_backend", values: ConfigValues{GitBackend: "svn"}},
		{name: "unknown_log_level", values: ConfigValues{LogLevel: "verbose"}},
		{name: "unknown_log_format", values: ConfigValues{LogFormat: "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.values.ToConfig()
			assert.Error(t, err)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	original := config.Default()
	original.Git.Backend = config.BackendAuto
	original.Workspace.BaseDir = "/scratch"

	cfg, err := FromConfig(original).ToConfig()
	require.NoError(t, err)

	assert.Equal(t, original.Git, cfg.Git)
	assert.Equal(t, original.Workspace, cfg.Workspace)
	assert.Equal(t, original.Logging, cfg.Logging)
}
