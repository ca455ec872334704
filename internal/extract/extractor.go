package extract

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/quantmind-br/repoextract/internal/domain"
	"github.com/quantmind-br/repoextract/internal/git"
	"github.com/quantmind-br/repoextract/internal/utils"
	"github.com/quantmind-br/repoextract/internal/workspace"
)

// Stage identifies a step of the extraction pipeline
type Stage string

const (
	StageCloning Stage = "cloning"
	StageTree    Stage = "tree"
	StageReading Stage = "reading"
	StageDone    Stage = "done"
)

// Event reports extraction progress. Done and Total are only set for StageReading.
type Event struct {
	Stage Stage
	Path  string
	Done  int
	Total int
}

// ProgressFunc receives progress events on the extracting goroutine
type ProgressFunc func(Event)

// Options contains options for creating an Extractor
type Options struct {
	Cloner       git.Cloner
	WorkspaceDir string // base directory for temporary workspaces, system temp when empty
	Timeout      time.Duration
	Logger       *utils.Logger
}

// Extractor runs the clone, tree, enumerate, format pipeline for one repository at a time
type Extractor struct {
	cloner       git.Cloner
	workspaceDir string
	timeout      time.Duration
	logger       *utils.Logger
	wsLogger     *utils.Logger
}

// New creates an Extractor
func New(opts Options) (*Extractor, error) {
	if opts.Cloner == nil {
		return nil, errors.New("cloner is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = utils.NewNopLogger()
	}
	return &Extractor{
		cloner:       opts.Cloner,
		workspaceDir: opts.WorkspaceDir,
		timeout:      opts.Timeout,
		logger:       logger.WithComponent("extract"),
		wsLogger:     logger.WithComponent("workspace"),
	}, nil
}

// Extract clones url into a fresh workspace and builds the document.
// The workspace is removed before Extract returns, on every path; a failed
// removal is reported as an error.
func (e *Extractor) Extract(ctx context.Context, url string, progress ProgressFunc) (doc *domain.Document, err error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, domain.ErrEmptyURL
	}
	if progress == nil {
		progress = func(Event) {}
	}
	logger := e.logger.WithURL(url)

	ws := workspace.New(e.workspaceDir, e.wsLogger.WithURL(url))
	if err := ws.Create(); err != nil {
		return nil, err
	}
	defer func() {
		if cerr := ws.Cleanup(); cerr != nil {
			logger.Warn().Err(cerr).Str("path", ws.Path()).Msg("Workspace cleanup failed")
			doc, err = nil, errors.Join(err, cerr)
		}
	}()

	root := ws.Path()
	start := time.Now()

	progress(Event{Stage: StageCloning})
	if err := e.clone(ctx, logger, url, root); err != nil {
		return nil, err
	}
	logger.Debug().
		Dur("elapsed", time.Since(start)).
		Msg("Clone finished")

	progress(Event{Stage: StageTree})
	tree := BuildTree(root, "")

	files, err := ListFiles(root)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	blocks := make([]string, 0, len(files))
	for i, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		entry := NewFileEntry(path, root)
		blocks = append(blocks, FormatEntry(entry))
		progress(Event{Stage: StageReading, Path: entry.RelPath, Done: i + 1, Total: len(files)})
	}

	doc = &domain.Document{
		RepoURL: url,
		Tree:    tree,
		Blocks:  blocks,
	}

	logger.Info().
		Int("files", doc.FileCount()).
		Dur("elapsed", time.Since(start)).
		Msg("Extraction complete")

	progress(Event{Stage: StageDone, Done: len(files), Total: len(files)})
	return doc, nil
}

func (e *Extractor) clone(ctx context.Context, logger *utils.Logger, url, dest string) error {
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	logger.Debug().
		Str("backend", e.cloner.Name()).
		Str("dest", dest).
		Msg("Starting clone")

	if err := e.cloner.Clone(ctx, url, dest); err != nil {
		logger.Error().Err(err).Msg("Clone failed")
		return err
	}
	return nil
}
