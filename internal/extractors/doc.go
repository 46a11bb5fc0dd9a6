// Package extractors provides text-extraction collaborators for the
// indexing pipeline and an extension-based registry over them. The
// core treats extracted text as an opaque, paragraph-separable string.
package extractors

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/candour-labs/semsearch-cli/internal/core/domain"
	"github.com/candour-labs/semsearch-cli/internal/core/ports/driven"
	"github.com/candour-labs/semsearch-cli/internal/logger"
)

// Registry selects an extractor by file extension.
type Registry struct {
	byExt map[string]driven.Extractor
}

// NewRegistry builds a registry over the given extractors. Later
// extractors win extension conflicts.
func NewRegistry(extractors ...driven.Extractor) *Registry {
	r := &Registry{byExt: make(map[string]driven.Extractor)}
	for _, e := range extractors {
		for _, ext := range e.Extensions() {
			r.byExt[strings.ToLower(ext)] = e
		}
	}
	return r
}

// Supports reports whether any registered extractor handles the path's
// extension.
func (r *Registry) Supports(path string) bool {
	_, ok := r.byExt[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Extract selects the extractor for the path's extension and runs it.
// An extension nothing handles fails with domain.ErrUnsupportedFormat.
func (r *Registry) Extract(ctx context.Context, path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	extractor, ok := r.byExt[ext]
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, ext)
	}

	logger.Info("Extracting text from %s (%s)", path, ext)
	return extractor.Extract(ctx, path)
}
