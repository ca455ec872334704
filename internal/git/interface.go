package git

import (
	"context"

	"github.com/go-git/go-git/v5"
)

// Cloner copies a remote repository into a local directory
type Cloner interface {
	// Name returns the backend name
	Name() string
	// Clone populates dest with the repository at url
	Clone(ctx context.Context, url, dest string) error
}

// Client defines the go-git operations used by GoGitCloner
type Client interface {
	PlainCloneContext(ctx context.Context, path string, isBare bool, o *git.CloneOptions) (*git.Repository, error)
}
