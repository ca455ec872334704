package output

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/quantmind-br/repoextract/internal/domain"
	"github.com/quantmind-br/repoextract/internal/utils"
)

// StdoutPath selects standard output as the destination
const StdoutPath = "-"

// Writer writes an extracted document to a file or a stream
type Writer struct {
	path         string
	force        bool
	jsonMetadata bool
	stdout       io.Writer
}

// WriterOptions contains options for the writer
type WriterOptions struct {
	Path         string // empty or "-" writes to Stdout
	Force        bool
	JSONMetadata bool // write <path>.json next to the document
	Stdout       io.Writer
}

// Metadata is the JSON sidecar describing a written document
type Metadata struct {
	RepoURL     string    `json:"repo_url"`
	FileCount   int       `json:"file_count"`
	Bytes       int       `json:"bytes"`
	GeneratedAt time.Time `json:"generated_at"`
}

// NewWriter creates a new output writer
func NewWriter(opts WriterOptions) *Writer {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	return &Writer{
		path:         opts.Path,
		force:        opts.Force,
		jsonMetadata: opts.JSONMetadata,
		stdout:       opts.Stdout,
	}
}

// ToStdout reports whether the writer targets the stream rather than a file
func (w *Writer) ToStdout() bool {
	return w.path == "" || w.path == StdoutPath
}

// Path returns the destination file, empty for standard output
func (w *Writer) Path() string {
	if w.ToStdout() {
		return ""
	}
	return utils.ExpandPath(w.path)
}

// Write saves the document text. An existing file is only replaced with Force.
func (w *Writer) Write(ctx context.Context, doc *domain.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	text := doc.String()

	if w.ToStdout() {
		if _, err := io.WriteString(w.stdout, text); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrWriteFailed, err)
		}
		if !strings.HasSuffix(text, "\n") {
			_, _ = io.WriteString(w.stdout, "\n")
		}
		return nil
	}

	path := w.Path()

	// Check if file exists
	if !w.force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", domain.ErrOutputExists, path)
		}
	}

	// Ensure directory exists
	if err := utils.EnsureDir(path); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrWriteFailed, err)
	}

	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrWriteFailed, err)
	}

	// Write JSON metadata if enabled
	if w.jsonMetadata {
		if err := w.writeJSON(path+".json", doc, len(text)); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrWriteFailed, err)
		}
	}

	return nil
}

// writeJSON writes JSON metadata
func (w *Writer) writeJSON(path string, doc *domain.Document, size int) error {
	metadata := Metadata{
		RepoURL:     doc.RepoURL,
		FileCount:   doc.FileCount(),
		Bytes:       size,
		GeneratedAt: time.Now().UTC(),
	}

	data, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
