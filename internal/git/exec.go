package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/quantmind-br/repoextract/internal/config"
	"github.com/quantmind-br/repoextract/internal/domain"
	"github.com/quantmind-br/repoextract/internal/utils"
)

// ExecCloner clones by running the git binary as a subprocess
type ExecCloner struct {
	binary string
	depth  int
	logger *utils.Logger
}

// ExecClonerOptions contains options for ExecCloner
type ExecClonerOptions struct {
	Binary string
	Depth  int
	Logger *utils.Logger
}

// NewExecCloner creates a new ExecCloner
func NewExecCloner(opts ExecClonerOptions) *ExecCloner {
	if opts.Binary == "" {
		opts.Binary = config.DefaultGitBinary
	}
	return &ExecCloner{
		binary: opts.Binary,
		depth:  opts.Depth,
		logger: opts.Logger,
	}
}

func (c *ExecCloner) Name() string {
	return config.BackendExec
}

// Args returns the arguments passed to the git binary
func (c *ExecCloner) Args(url, dest string) []string {
	args := []string{"clone"}
	if c.depth > 0 {
		args = append(args, "--depth", strconv.Itoa(c.depth))
	}
	// "--" keeps a URL beginning with "-" from being read as an option
	return append(args, "--", url, dest)
}

// Clone runs "git clone". Output is captured and only used for debug logging;
// any non-zero exit is reported as a CloneError.
func (c *ExecCloner) Clone(ctx context.Context, url, dest string) error {
	if c.logger != nil {
		c.logger.Info().Str("url", url).Str("binary", c.binary).Msg("Cloning repository")
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.binary, c.Args(url, dest)...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	// never block on a credential prompt
	cmd.Env = append(cmd.Environ(), "GIT_TERMINAL_PROMPT=0")

	if err := cmd.Run(); err != nil {
		if c.logger != nil {
			c.logger.Debug().
				Err(err).
				Str("stderr", strings.TrimSpace(stderr.String())).
				Msg("git clone failed")
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = fmt.Errorf("%w: %v", ctxErr, err)
		}
		return domain.NewCloneError(url, c.Name(), err)
	}

	if c.logger != nil {
		c.logger.Debug().Str("dest", dest).Msg("Cloned repository")
	}
	return nil
}

// BinaryVersion returns the output of "<binary> --version"
func BinaryVersion(ctx context.Context, binary string) (string, error) {
	out, err := exec.CommandContext(ctx, binary, "--version").Output()
	if err != nil {
		return "", fmt.Errorf("%s --version failed: %w", binary, err)
	}
	return strings.TrimSpace(string(out)), nil
}
