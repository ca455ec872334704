package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/quantmind-br/repoextract/internal/domain"
	"github.com/quantmind-br/repoextract/internal/extract"
	"github.com/quantmind-br/repoextract/internal/output"
	"github.com/quantmind-br/repoextract/internal/tui"
	"github.com/quantmind-br/repoextract/internal/utils"
)

var (
	// Dependencies for testing
	clipboardWriter tui.Clipboard = tui.SystemClipboard{}
	promptURL                     = promptForURL
	stdinIsTerminal               = func() bool { return isatty.IsTerminal(os.Stdin.Fd()) }
)

func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract [url]",
		Short: "Extract a repository without the interactive UI",
		Long: `Clones the repository, renders its file tree and prints the formatted
contents to stdout (or to the file given with -o). Progress is shown on stderr.

When no URL is given and stdin is a terminal, the URL is asked for.`,
		Args:          cobra.MaximumNArgs(1),
		RunE:          runExtract,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringP("output", "o", "", "Write the result to a file instead of stdout")
	cmd.Flags().Bool("force", false, "Overwrite the output file if it exists")
	cmd.Flags().Bool("json-meta", false, "Write a JSON metadata file next to the output file")
	cmd.Flags().Bool("clipboard", false, "Also copy the result to the clipboard")
	cmd.Flags().Bool("no-progress", false, "Disable the progress bar")

	return cmd
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var url string
	if len(args) > 0 {
		url = args[0]
	} else if stdinIsTerminal() {
		if url, err = promptURL(); err != nil {
			return err
		}
	}
	url = strings.TrimSpace(url)
	if url == "" {
		return fmt.Errorf("%w: %s", domain.ErrEmptyURL, domain.MsgEmptyURL)
	}

	outputPath, _ := cmd.Flags().GetString("output")
	force, _ := cmd.Flags().GetBool("force")
	jsonMeta, _ := cmd.Flags().GetBool("json-meta")
	toClipboard, _ := cmd.Flags().GetBool("clipboard")
	noProgress, _ := cmd.Flags().GetBool("no-progress")

	writer := output.NewWriter(output.WriterOptions{
		Path:         outputPath,
		Force:        force,
		JSONMetadata: jsonMeta,
		Stdout:       cmd.OutOrStdout(),
	})

	// Refuse early so a long clone is not wasted
	if !writer.ToStdout() && !force {
		if _, err := os.Stat(writer.Path()); err == nil {
			return fmt.Errorf("%w: %s (use --force to overwrite)", domain.ErrOutputExists, writer.Path())
		}
	}

	orchestrator, err := newOrchestrator(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	// Handle graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reporter := newProgressReporter(cmd.ErrOrStderr(), !noProgress)
	defer reporter.finish()

	doc, err := orchestrator.Run(ctx, url, reporter.handle)
	reporter.finish()
	if err != nil {
		if errors.Is(err, domain.ErrCloneFailed) {
			return fmt.Errorf("%s: %w", domain.MsgCloneFailed, err)
		}
		return err
	}

	if err := writer.Write(ctx, doc); err != nil {
		return err
	}

	if toClipboard {
		if err := clipboardWriter.WriteAll(doc.String()); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
	}

	if !writer.ToStdout() {
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d files to %s\n", doc.FileCount(), writer.Path())
	}
	return nil
}

// promptForURL asks for the repository URL with a huh input
func promptForURL() (string, error) {
	var url string
	err := huh.NewInput().
		Title("Repository URL").
		Placeholder(tui.URLPlaceholder).
		Value(&url).
		Validate(tui.ValidateRequired).
		Run()
	if err != nil {
		return "", err
	}
	return url, nil
}

// progressReporter turns extraction events into progress bars on stderr
type progressReporter struct {
	w       io.Writer
	enabled bool
	bar     *progressbar.ProgressBar
	total   int
}

func newProgressReporter(w io.Writer, enabled bool) *progressReporter {
	return &progressReporter{w: w, enabled: enabled}
}

func (r *progressReporter) handle(ev extract.Event) {
	if !r.enabled {
		return
	}

	switch ev.Stage {
	case extract.StageCloning:
		r.finish()
		r.bar = utils.NewProgressBar(-1, utils.DescCloning, r.w)
	case extract.StageTree:
		if r.bar != nil {
			r.bar.Describe("Building tree")
		}
	case extract.StageReading:
		if r.bar == nil || r.total != ev.Total {
			r.finish()
			r.bar = utils.NewProgressBar(ev.Total, utils.DescExtracting, r.w)
			r.total = ev.Total
		}
		_ = r.bar.Set(ev.Done)
	case extract.StageDone:
		r.finish()
	}
}

func (r *progressReporter) finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
		r.bar = nil
		r.total = 0
	}
}
