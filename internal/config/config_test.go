package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmind-br/repoextract/internal/domain"
)

// isolate points the home directory and working directory at fresh temp dirs
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Chdir(t.TempDir())
	return home
}

// TestConfig_Validate tests configuration validation
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		check   func(*testing.T, *Config)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			modify: func(c *Config) {},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, BackendExec, c.Git.Backend)
			},
		},
		{
			name: "empty backend defaults to exec",
			modify: func(c *Config) {
				c.Git.Backend = ""
			},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, DefaultGitBackend, c.Git.Backend)
			},
		},
		{
			name: "backend is case insensitive",
			modify: func(c *Config) {
				c.Git.Backend = " Go-Git "
			},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, BackendGoGit, c.Git.Backend)
			},
		},
		{
			name: "unknown backend rejected",
			modify: func(c *Config) {
				c.Git.Backend = "svn"
			},
			wantErr: true,
		},
		{
			name: "blank binary defaults to git",
			modify: func(c *Config) {
				c.Git.Binary = "  "
			},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, DefaultGitBinary, c.Git.Binary)
			},
		},
		{
			name: "negative depth defaults",
			modify: func(c *Config) {
				c.Git.Depth = -3
			},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, DefaultCloneDepth, c.Git.Depth)
			},
		},
		{
			name: "zero depth kept for full clone",
			modify: func(c *Config) {
				c.Git.Depth = 0
			},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, 0, c.Git.Depth)
			},
		},
		{
			name: "timeout below minimum defaults",
			modify: func(c *Config) {
				c.Git.Timeout = 10 * time.Millisecond
			},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, DefaultCloneTimeout, c.Git.Timeout)
			},
		},
		{
			name: "empty logging defaults",
			modify: func(c *Config) {
				c.Logging = LoggingConfig{}
			},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, DefaultLogLevel, c.Logging.Level)
				assert.Equal(t, DefaultLogFormat, c.Logging.Format)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	home := isolate(t)

	cfg := Default()
	require.NotNil(t, cfg)
	assert.Equal(t, DefaultGitBackend, cfg.Git.Backend)
	assert.Equal(t, DefaultGitBinary, cfg.Git.Binary)
	assert.Equal(t, DefaultCloneDepth, cfg.Git.Depth)
	assert.Equal(t, DefaultCloneTimeout, cfg.Git.Timeout)
	assert.Empty(t, cfg.Workspace.BaseDir)
	assert.Equal(t, filepath.Join(home, ".repoextract", "repoextract.log"), cfg.Logging.File)
}

func TestConfigPaths(t *testing.T) {
	home := isolate(t)

	assert.Equal(t, filepath.Join(home, ".repoextract"), ConfigDir())
	assert.Equal(t, filepath.Join(home, ".repoextract", "config.yaml"), ConfigFilePath())
}

// TestLoad_MissingConfig tests loading with no config file
func TestLoad_MissingConfig(t *testing.T) {
	isolate(t)

	cfg, err := load(viper.New())
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, DefaultGitBackend, cfg.Git.Backend)
	assert.Equal(t, DefaultCloneTimeout, cfg.Git.Timeout)
}

// TestLoad_InvalidConfigFile tests loading with invalid config file
func TestLoad_InvalidConfigFile(t *testing.T) {
	isolate(t)
	require.NoError(t, os.WriteFile("config.yaml", []byte("invalid: yaml: content: ["), 0644))

	cfg, err := load(viper.New())
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidBackend(t *testing.T) {
	isolate(t)
	require.NoError(t, os.WriteFile("config.yaml", []byte("git:\n  backend: hg\n"), 0644))

	_, err := load(viper.New())
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "git.backend", verr.Field)
	assert.Contains(t, verr.Message, `"hg"`)
}

// TestLoad_ValidConfigFile tests loading with valid config file
func TestLoad_ValidConfigFile(t *testing.T) {
	isolate(t)
	content := `
git:
  backend: go-git
  depth: 0
  timeout: 2m
workspace:
  base_dir: /var/tmp
logging:
  level: debug
`
	require.NoError(t, os.WriteFile("config.yaml", []byte(content), 0644))

	cfg, err := load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, BackendGoGit, cfg.Git.Backend)
	assert.Equal(t, 0, cfg.Git.Depth)
	assert.Equal(t, 2*time.Minute, cfg.Git.Timeout)
	assert.Equal(t, "/var/tmp", cfg.Workspace.BaseDir)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Logging.Format)
}

// TestLoad_EnvironmentVariable tests loading with environment variable
func TestLoad_EnvironmentVariable(t *testing.T) {
	isolate(t)
	t.Setenv("REPOEXTRACT_GIT_BINARY", "/opt/git/bin/git")

	cfg, err := load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "/opt/git/bin/git", cfg.Git.Binary)
}

func TestSave_RoundTrip(t *testing.T) {
	isolate(t)

	cfg := Default()
	cfg.Git.Backend = BackendAuto
	cfg.Git.Timeout = 90 * time.Second
	cfg.Logging.Level = "warn"

	path := filepath.Join(ConfigDir(), "config.yaml")
	require.NoError(t, Save(cfg, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "timeout: 1m30s")

	loaded, err := load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, BackendAuto, loaded.Git.Backend)
	assert.Equal(t, 90*time.Second, loaded.Git.Timeout)
	assert.Equal(t, "warn", loaded.Logging.Level)
}

func TestSave_Errors(t *testing.T) {
	isolate(t)

	t.Run("nil config", func(t *testing.T) {
		assert.Error(t, Save(nil, "config.yaml"))
	})

	t.Run("invalid config", func(t *testing.T) {
		cfg := Default()
		cfg.Git.Backend = "cvs"
		assert.Error(t, Save(cfg, "config.yaml"))
		_, err := os.Stat("config.yaml")
		assert.True(t, os.IsNotExist(err))
	})
}
