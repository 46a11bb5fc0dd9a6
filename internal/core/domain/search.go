package domain

// SearchResult represents a single similarity hit.
type SearchResult struct {
	// ChunkText is the matched chunk content.
	ChunkText string

	// Source is the originating document path.
	Source string

	// Strategy is the chunking strategy the record was stored with.
	Strategy ChunkStrategy

	// Score is the cosine similarity between the query vector and the
	// stored vector, conceptually in [-1, 1].
	Score float64
}
