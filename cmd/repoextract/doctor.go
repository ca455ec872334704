package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/quantmind-br/repoextract/internal/config"
	"github.com/quantmind-br/repoextract/internal/git"
	"github.com/quantmind-br/repoextract/internal/workspace"
)

var (
	// Dependencies for testing
	gitVersion           = git.BinaryVersion
	clipboardUnsupported = func() bool { return clipboard.Unsupported }
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check system dependencies",
	Long:  "Verifies that the git client, workspace directory, config file and clipboard are usable.",
	RunE: func(cmd *cobra.Command, args []string) error {
		runDoctor(cmd.OutOrStdout())
		return nil
	},
}

// runDoctor prints one line per check and reports whether all critical checks passed
func runDoctor(w io.Writer) bool {
	fmt.Fprintln(w, "Checking system dependencies...")
	allPassed := true

	// Check 1: Config file
	fmt.Fprint(w, "  Config file: ")
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(w, "WARN (%v)\n", err)
		cfg = config.Default()
	} else {
		fmt.Fprintln(w, "OK")
	}

	// Check 2: git binary
	fmt.Fprint(w, "  Git binary: ")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if v, err := gitVersion(ctx, cfg.Git.Binary); err == nil {
		fmt.Fprintf(w, "OK (%s)\n", v)
	} else if cfg.Git.Backend == config.BackendExec {
		fmt.Fprintf(w, "FAILED (%v)\n", err)
		allPassed = false
	} else {
		fmt.Fprintf(w, "NOT FOUND (go-git will be used)\n")
	}

	// Check 3: Workspace directory
	fmt.Fprint(w, "  Workspace directory: ")
	ws := workspace.New(cfg.Workspace.BaseDir, nil)
	if err := ws.Create(); err != nil {
		fmt.Fprintf(w, "FAILED (%v)\n", err)
		allPassed = false
	} else {
		path := ws.Path()
		if err := ws.Cleanup(); err != nil {
			fmt.Fprintf(w, "FAILED (%v)\n", err)
			allPassed = false
		} else {
			fmt.Fprintf(w, "OK (%s)\n", path)
		}
	}

	// Check 4: Clipboard
	fmt.Fprint(w, "  Clipboard: ")
	if clipboardUnsupported() {
		fmt.Fprintln(w, "NOT AVAILABLE (copy will fail)")
	} else {
		fmt.Fprintln(w, "OK")
	}

	fmt.Fprintln(w)
	if allPassed {
		fmt.Fprintln(w, "All critical checks passed!")
	} else {
		fmt.Fprintln(w, "Some checks failed. Please resolve the issues above.")
	}
	return allPassed
}
