package git

import (
	"fmt"
	"os/exec"

	"github.com/quantmind-br/repoextract/internal/config"
	"github.com/quantmind-br/repoextract/internal/utils"
)

// lookPath is swapped in tests
var lookPath = exec.LookPath

// Resolution is the outcome of backend selection for a GitConfig
type Resolution struct {
	Backend    string // exec or go-git
	Binary     string
	BinaryPath string // empty when the binary is not on PATH
	BinaryErr  error
}

// Resolve reports which backend NewCloner picks for cfg and whether the git
// binary can be found. An unknown backend is returned unchanged.
func Resolve(cfg config.GitConfig) Resolution {
	r := Resolution{Backend: cfg.Backend, Binary: cfg.Binary}
	if r.Backend == "" {
		r.Backend = config.DefaultGitBackend
	}
	if r.Binary == "" {
		r.Binary = config.DefaultGitBinary
	}
	r.BinaryPath, r.BinaryErr = lookPath(r.Binary)
	if r.Backend == config.BackendAuto {
		r.Backend = config.BackendExec
		if r.BinaryErr != nil {
			r.Backend = config.BackendGoGit
		}
	}
	return r
}

// NewCloner returns the Cloner selected by cfg.Backend.
// "auto" prefers the git binary and falls back to go-git when it is not on PATH.
func NewCloner(cfg config.GitConfig, logger *utils.Logger) (Cloner, error) {
	var gitLogger *utils.Logger
	if logger != nil {
		gitLogger = logger.WithComponent("git")
	}

	r := Resolve(cfg)
	switch r.Backend {
	case config.BackendExec:
		return newExec(cfg, gitLogger), nil
	case config.BackendGoGit:
		if cfg.Backend == config.BackendAuto && gitLogger != nil {
			gitLogger.Warn().Str("binary", r.Binary).Msg("git binary not found, using go-git")
		}
		return newGoGit(cfg, gitLogger), nil
	default:
		return nil, fmt.Errorf("unknown git backend: %s", r.Backend)
	}
}

func newExec(cfg config.GitConfig, logger *utils.Logger) *ExecCloner {
	if logger != nil {
		logger = logger.WithBackend(config.BackendExec)
	}
	return NewExecCloner(ExecClonerOptions{
		Binary: cfg.Binary,
		Depth:  cfg.Depth,
		Logger: logger,
	})
}

func newGoGit(cfg config.GitConfig, logger *utils.Logger) *GoGitCloner {
	if logger != nil {
		logger = logger.WithBackend(config.BackendGoGit)
	}
	return NewGoGitCloner(GoGitClonerOptions{
		Depth:  cfg.Depth,
		Logger: logger,
	})
}
