package git

import (
	"context"
	"os"

	"github.com/go-git/go-git/v5"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"

	"github.com/quantmind-br/repoextract/internal/config"
	"github.com/quantmind-br/repoextract/internal/domain"
	"github.com/quantmind-br/repoextract/internal/utils"
)

// GoGitCloner clones in-process with go-git
type GoGitCloner struct {
	client Client
	depth  int
	logger *utils.Logger
}

// GoGitClonerOptions contains options for GoGitCloner
type GoGitClonerOptions struct {
	Client Client
	Depth  int
	Logger *utils.Logger
}

// NewGoGitCloner creates a new GoGitCloner
func NewGoGitCloner(opts GoGitClonerOptions) *GoGitCloner {
	client := opts.Client
	if client == nil {
		client = NewClient()
	}
	return &GoGitCloner{
		client: client,
		depth:  opts.Depth,
		logger: opts.Logger,
	}
}

func (c *GoGitCloner) Name() string {
	return config.BackendGoGit
}

// CloneOptions builds the go-git options for url
func (c *GoGitCloner) CloneOptions(url string) *git.CloneOptions {
	opts := &git.CloneOptions{
		URL:   url,
		Depth: c.depth,
	}
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		opts.Auth = &githttp.BasicAuth{
			Username: "token",
			Password: token,
		}
	}
	return opts
}

func (c *GoGitCloner) Clone(ctx context.Context, url, dest string) error {
	if c.logger != nil {
		c.logger.Info().Str("url", url).Msg("Cloning repository")
	}

	opts := c.CloneOptions(url)
	if opts.Auth != nil && c.logger != nil {
		c.logger.Debug().Msg("using GitHub token for authentication")
	}

	if _, err := c.client.PlainCloneContext(ctx, dest, false, opts); err != nil {
		if c.logger != nil {
			c.logger.Debug().Err(err).Msg("go-git clone failed")
		}
		return domain.NewCloneError(url, c.Name(), err)
	}

	if c.logger != nil {
		c.logger.Debug().Str("dest", dest).Msg("Cloned repository")
	}
	return nil
}
