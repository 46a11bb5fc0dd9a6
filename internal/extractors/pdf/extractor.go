// Package pdf extracts text from PDF documents by shelling out to
// pdftotext (poppler-utils). PDF text extraction is notorious for
// inconsistent paragraph breaks, so the output is normalised before it
// reaches the chunker.
package pdf

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/candour-labs/semsearch-cli/internal/core/domain"
	"github.com/candour-labs/semsearch-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// CommandRunner abstracts process execution for testing.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// execRunner runs commands with os/exec.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// blankRuns matches runs of two or more newlines with optional
// whitespace between them.
var blankRuns = regexp.MustCompile(`(\n\s*){2,}`)

// Extractor handles PDF documents.
type Extractor struct {
	runner CommandRunner
}

// Option configures the extractor.
type Option func(*Extractor)

// WithRunner overrides the command runner. Used in tests.
func WithRunner(r CommandRunner) Option {
	return func(e *Extractor) {
		e.runner = r
	}
}

// New creates a new PDF extractor.
func New(opts ...Option) *Extractor {
	e := &Extractor{runner: execRunner{}}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extensions returns the handled file extensions.
func (e *Extractor) Extensions() []string {
	return []string{".pdf"}
}

// Extract runs pdftotext and normalises paragraph breaks in the
// output.
func (e *Extractor) Extract(ctx context.Context, path string) (string, error) {
	// "-" writes the extracted text to stdout.
	out, err := e.runner.Run(ctx, "pdftotext", path, "-")
	if err != nil {
		return "", fmt.Errorf("%w: pdftotext %s: %w", domain.ErrDocumentProcessing, path, err)
	}

	text := blankRuns.ReplaceAllString(string(out), "\n\n")
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: file is empty: %s", domain.ErrInvalidInput, path)
	}

	return text, nil
}
