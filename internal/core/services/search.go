package services

import (
	"context"
	"fmt"
	"math"

	"github.com/candour-labs/semsearch-cli/internal/chunker"
	"github.com/candour-labs/semsearch-cli/internal/core/domain"
	"github.com/candour-labs/semsearch-cli/internal/core/ports/driven"
	"github.com/candour-labs/semsearch-cli/internal/logger"
)

// SearchService answers free-text queries against the vector store. The
// query is chunked the same way documents are, each chunk is embedded,
// and the per-chunk result lists are merged round-robin so that every
// part of a multi-paragraph query contributes to the final ranking.
type SearchService struct {
	store    driven.VectorStore
	embedder driven.EmbeddingService
}

func NewSearchService(store driven.VectorStore, embedder driven.EmbeddingService) *SearchService {
	return &SearchService{store: store, embedder: embedder}
}

// Search embeds the query text and returns up to topK results ordered by
// cosine similarity.
func (s *SearchService) Search(ctx context.Context, query string, topK int) ([]domain.SearchResult, error) {
	chunks, err := chunker.ByParagraphs(query)
	if err != nil {
		return nil, fmt.Errorf("chunking query: %w", err)
	}

	logger.Debug("query split into %d chunk(s)", len(chunks))

	vectors, err := s.embedder.EmbedBatch(ctx, chunks)
	if err != nil {
		return nil, err
	}
	chunks = nil

	return s.SearchVectors(ctx, vectors, topK)
}

// SearchVectors runs a similarity search for each query vector and merges
// the ranked lists. Zero-norm vectors are skipped rather than treated as
// errors, since a degenerate embedding for one chunk should not sink the
// whole query.
func (s *SearchService) SearchVectors(ctx context.Context, queryVectors [][]float32, topK int) ([]domain.SearchResult, error) {
	if len(queryVectors) == 0 {
		return nil, fmt.Errorf("%w: no query vectors to search with", domain.ErrValidation)
	}
	if topK <= 0 {
		return nil, fmt.Errorf("%w: top_k must be positive, got %d", domain.ErrValidation, topK)
	}

	perVector := make([][]domain.SearchResult, 0, len(queryVectors))
	for i, vector := range queryVectors {
		norm := vectorNorm(vector)
		if norm == 0 {
			logger.Warn("skipping zero-norm query vector %d of %d", i+1, len(queryVectors))
			continue
		}

		results, err := s.store.SearchSimilar(ctx, vector, norm, topK)
		if err != nil {
			return nil, err
		}
		perVector = append(perVector, results)
	}

	return mergeResults(perVector, topK), nil
}

// mergeResults interleaves the ranked lists one rank at a time: first the
// best hit of every list, then the second best, and so on. The merge
// stops dead the moment topK results are collected; candidates past that
// point are never examined, so they can neither be added nor bump the
// score of an earlier duplicate. Before the cutoff, a chunk that appears
// in more than one list keeps its original position and takes the higher
// of the two scores.
func mergeResults(lists [][]domain.SearchResult, topK int) []domain.SearchResult {
	merged := make([]domain.SearchResult, 0, topK)
	seen := make(map[string]int, topK)

	for round := 0; round < topK; round++ {
		for _, list := range lists {
			if len(merged) >= topK {
				return merged
			}
			if round >= len(list) {
				continue
			}
			candidate := list[round]
			if at, ok := seen[candidate.ChunkText]; ok {
				if candidate.Score > merged[at].Score {
					merged[at] = candidate
				}
				continue
			}
			seen[candidate.ChunkText] = len(merged)
			merged = append(merged, candidate)
		}
	}

	return merged
}

func vectorNorm(vector []float32) float64 {
	var sum float64
	for _, v := range vector {
		sum += float64(v) * float64(v)
	}
	return math.Sqrt(sum)
}
