// Package git fetches remote repositories into a local workspace.
//
// Two backends implement Cloner:
//   - ExecCloner: runs the git binary as a subprocess (default)
//   - GoGitCloner: clones in-process with go-git
//
// Every failure is reported as a *domain.CloneError so callers can treat
// authentication, network and URL problems alike.
//
// Usage:
//
//	cloner, err := git.NewCloner(cfg.Git, logger)
//	if err != nil {
//	    return err
//	}
//	err = cloner.Clone(ctx, "https://github.com/user/repo.git", dir)
package git
