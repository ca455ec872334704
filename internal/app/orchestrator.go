package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/quantmind-br/repoextract/internal/config"
	"github.com/quantmind-br/repoextract/internal/domain"
	"github.com/quantmind-br/repoextract/internal/extract"
	"github.com/quantmind-br/repoextract/internal/git"
	"github.com/quantmind-br/repoextract/internal/utils"
)

// ClonerFactory builds the repository fetcher from git settings
type ClonerFactory func(config.GitConfig, *utils.Logger) (git.Cloner, error)

// Orchestrator coordinates one repository extraction at a time
type Orchestrator struct {
	config    *config.Config
	cloner    git.Cloner
	extractor *extract.Extractor
	logger    *utils.Logger
}

// OrchestratorOptions contains options for creating an orchestrator
type OrchestratorOptions struct {
	Config        *config.Config
	Verbose       bool
	LogOutput     io.Writer // stderr when nil
	Logger        *utils.Logger
	ClonerFactory ClonerFactory
}

// NewOrchestrator creates a new orchestrator with the given configuration
func NewOrchestrator(opts OrchestratorOptions) (*Orchestrator, error) {
	cfg := opts.Config

	// Validate config
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	logger := opts.Logger
	if logger == nil {
		logLevel := config.DefaultLogLevel
		logFormat := config.DefaultLogFormat
		if cfg.Logging.Level != "" {
			logLevel = cfg.Logging.Level
		}
		if cfg.Logging.Format != "" {
			logFormat = cfg.Logging.Format
		}
		logger = utils.NewLogger(utils.LoggerOptions{
			Level:   logLevel,
			Format:  logFormat,
			Output:  opts.LogOutput,
			Verbose: opts.Verbose,
		})
	}

	// Set default cloner factory if none provided
	factory := opts.ClonerFactory
	if factory == nil {
		factory = func(g config.GitConfig, l *utils.Logger) (git.Cloner, error) {
			return git.NewCloner(g, l)
		}
	}

	cloner, err := factory(cfg.Git, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloner: %w", err)
	}

	extractor, err := extract.New(extract.Options{
		Cloner:       cloner,
		WorkspaceDir: cfg.Workspace.BaseDir,
		Timeout:      cfg.Git.Timeout,
		Logger:       logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create extractor: %w", err)
	}

	return &Orchestrator{
		config:    cfg,
		cloner:    cloner,
		extractor: extractor,
		logger:    logger,
	}, nil
}

// Run extracts the repository at url into an in-memory document
func (o *Orchestrator) Run(ctx context.Context, url string, progress extract.ProgressFunc) (*domain.Document, error) {
	startTime := time.Now()

	o.logger.Info().
		Str("url", url).
		Str("backend", o.cloner.Name()).
		Msg("Starting repository extraction")

	doc, err := o.extractor.Extract(ctx, url, progress)
	if err != nil {
		if ctx.Err() != nil {
			o.logger.Warn().Msg("Extraction cancelled")
			return nil, ctx.Err()
		}
		o.logger.Error().Err(err).Str("url", url).Msg("Extraction failed")
		return nil, err
	}

	o.logger.Info().
		Int("files", doc.FileCount()).
		Dur("duration", time.Since(startTime)).
		Msg("Repository extraction completed")

	return doc, nil
}

// Backend returns the name of the clone backend in use
func (o *Orchestrator) Backend() string {
	return o.cloner.Name()
}

// Logger returns the orchestrator's logger
func (o *Orchestrator) Logger() *utils.Logger {
	return o.logger
}
