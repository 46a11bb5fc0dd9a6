package driving

import (
	"context"

	"github.com/candour-labs/semsearch-cli/internal/core/domain"
)

// SearchService answers free-text queries against the indexed corpus.
type SearchService interface {
	// Search chunks the query, embeds each chunk, runs one similarity
	// search per query vector and merges the ranked lists into at most
	// topK deduplicated results, best first.
	Search(ctx context.Context, query string, topK int) ([]domain.SearchResult, error)
}
