package driven

import "context"

// EmbeddingService generates vector embeddings from text.
//
// Implementations contract on one vector per input text, in the same
// order as the input. Transport and auth details are opaque to callers.
//
// Provider adapters (gemini, openai) perform a single remote call per
// EmbedBatch invocation; the batching decorator in
// internal/adapters/driven/embedding layers chunk batching, retry and
// pacing on top of a provider while keeping this interface.
type EmbeddingService interface {
	// EmbedBatch generates embeddings for the given texts. The returned
	// slice has the same length and order as the input.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// ModelName returns the name of the embedding model being used.
	ModelName() string

	// Ping validates the service is reachable with a lightweight request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}
