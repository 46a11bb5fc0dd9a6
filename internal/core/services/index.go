package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/candour-labs/semsearch-cli/internal/chunker"
	"github.com/candour-labs/semsearch-cli/internal/core/domain"
	"github.com/candour-labs/semsearch-cli/internal/core/ports/driven"
	"github.com/candour-labs/semsearch-cli/internal/core/ports/driving"
	"github.com/candour-labs/semsearch-cli/internal/logger"
)

// TextExtractor turns a file on disk into plain text. The extractors
// registry satisfies it; services only care about these two methods.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (string, error)
	Supports(path string) bool
}

// IndexService drives the indexing pipeline: extract text, chunk it,
// embed the chunks and persist them. Re-indexing a file replaces its
// previous chunks, so the operation is idempotent per source path.
type IndexService struct {
	store     driven.VectorStore
	embedder  driven.EmbeddingService
	extractor TextExtractor
}

func NewIndexService(store driven.VectorStore, embedder driven.EmbeddingService, extractor TextExtractor) *IndexService {
	return &IndexService{store: store, embedder: embedder, extractor: extractor}
}

// IndexFile indexes a single document. Existing chunks for the same
// source are removed first; if that removal fails the file is left
// untouched rather than indexed twice.
func (s *IndexService) IndexFile(ctx context.Context, path string) error {
	logger.Section("Indexing " + path)

	if ok := s.store.DeleteSource(ctx, path); !ok {
		return fmt.Errorf("%w: could not clear existing chunks for %s", domain.ErrDatabase, path)
	}

	text, err := s.extractor.Extract(ctx, path)
	if err != nil {
		return err
	}

	chunks, err := chunker.ByParagraphs(text)
	if err != nil {
		return fmt.Errorf("chunking %s: %w", path, err)
	}
	text = ""

	logger.Info("split into %d chunk(s)", len(chunks))

	vectors, err := s.embedder.EmbedBatch(ctx, chunks)
	if err != nil {
		return err
	}

	if err := s.store.SaveChunks(ctx, path, domain.StrategyParagraph, chunks, vectors); err != nil {
		return err
	}
	chunks, vectors = nil, nil

	logger.Info("indexed %s", path)
	return nil
}

// IndexDir indexes every supported file directly inside dir. Unsupported
// files are counted as skipped and individual failures do not stop the
// walk; only a cancelled context aborts it.
func (s *IndexService) IndexDir(ctx context.Context, dir string) (driving.IndexStats, error) {
	var stats driving.IndexStats

	entries, err := os.ReadDir(dir)
	if err != nil {
		return stats, fmt.Errorf("%w: reading directory %s: %w", domain.ErrDocumentProcessing, dir, err)
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		if entry.IsDir() {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		if !s.extractor.Supports(path) {
			stats.Skipped++
			logger.Debug("skipping unsupported file %s", path)
			continue
		}

		if err := s.IndexFile(ctx, path); err != nil {
			stats.Failed++
			logger.Error("failed to index %s: %v", path, err)
			continue
		}
		stats.Indexed++
	}

	return stats, nil
}

// ListSources returns the distinct source paths currently indexed.
func (s *IndexService) ListSources(ctx context.Context) ([]string, error) {
	return s.store.ListSources(ctx)
}

// Reset removes every indexed chunk.
func (s *IndexService) Reset(ctx context.Context) error {
	if ok := s.store.DeleteAll(ctx); !ok {
		return fmt.Errorf("%w: could not clear the index", domain.ErrDatabase)
	}
	return nil
}
