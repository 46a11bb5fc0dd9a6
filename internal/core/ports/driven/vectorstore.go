package driven

import (
	"context"

	"github.com/candour-labs/semsearch-cli/internal/core/domain"
)

// VectorStore persists chunks with their embeddings and precomputed
// norms, and evaluates ranked similarity queries inside the storage
// engine rather than pulling vectors into the caller.
//
// The store exclusively owns persisted records; callers only reference
// them by value through these operations.
type VectorStore interface {
	// SaveChunks writes parallel chunk and embedding slices for one
	// source in a single atomic batch, computing each vector's norm at
	// write time. Mismatched or empty input fails with
	// domain.ErrValidation; a write failure rolls the whole batch back
	// and reports domain.ErrDatabase.
	SaveChunks(ctx context.Context, source string, strategy domain.ChunkStrategy, chunks []string, embeddings [][]float32) error

	// DeleteSource removes all records for one source. Reports success
	// as a boolean rather than an error; deleting a source with no
	// records succeeds.
	DeleteSource(ctx context.Context, source string) bool

	// DeleteAll clears every record. Same boolean contract as
	// DeleteSource.
	DeleteAll(ctx context.Context) bool

	// ListSources returns the distinct stored source identifiers,
	// sorted ascending.
	ListSources(ctx context.Context) ([]string, error)

	// SearchSimilar scores every record with a positive norm against
	// the query vector as dot(query, stored)/(storedNorm*queryNorm) and
	// returns the top k by score descending. Ties break by storage
	// order, which is unspecified. Failures report
	// domain.ErrDatabaseSearch.
	SearchSimilar(ctx context.Context, query []float32, queryNorm float64, topK int) ([]domain.SearchResult, error)

	// Close releases the underlying database handle.
	Close() error
}
