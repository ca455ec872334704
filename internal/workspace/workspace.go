// Package workspace manages the temporary directory that holds a single
// cloned repository for the duration of one extraction.
package workspace

import (
	"fmt"
	"os"
	"sync"

	"github.com/quantmind-br/repoextract/internal/domain"
	"github.com/quantmind-br/repoextract/internal/utils"
)

const pattern = "repoextract-*"

// Workspace is an ephemeral directory that is removed exactly once
type Workspace struct {
	baseDir string
	path    string
	logger  *utils.Logger
	once    sync.Once
	err     error
}

// New creates a workspace rooted under baseDir (the system temp dir when empty).
// The directory itself is not created until Create is called.
func New(baseDir string, logger *utils.Logger) *Workspace {
	if baseDir == "" {
		baseDir = os.TempDir()
	}
	return &Workspace{
		baseDir: utils.ExpandPath(baseDir),
		logger:  logger,
	}
}

// Create makes a fresh, empty directory
func (w *Workspace) Create() error {
	if w.path != "" {
		return fmt.Errorf("%w: already created at %s", domain.ErrWorkspace, w.path)
	}
	dir, err := os.MkdirTemp(w.baseDir, pattern)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrWorkspace, err)
	}
	w.path = dir
	if w.logger != nil {
		w.logger.Debug().Str("path", dir).Msg("Created workspace")
	}
	return nil
}

// Path returns the workspace directory, empty before Create
func (w *Workspace) Path() string {
	return w.path
}

// Cleanup removes the workspace directory. Only the first call does any work;
// later calls return the first result.
func (w *Workspace) Cleanup() error {
	w.once.Do(func() {
		if w.path == "" {
			return
		}
		if err := os.RemoveAll(w.path); err != nil {
			w.err = fmt.Errorf("failed to cleanup workspace: %w", err)
			return
		}
		if w.logger != nil {
			w.logger.Debug().Str("path", w.path).Msg("Cleaned up workspace")
		}
	})
	return w.err
}
