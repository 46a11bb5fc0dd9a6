package domain

import "fmt"

// EmbeddingProvider identifies a remote embedding service.
type EmbeddingProvider string

// Available embedding providers.
const (
	// ProviderGemini is the Google Gemini embedding API.
	ProviderGemini EmbeddingProvider = "gemini"

	// ProviderOpenAI is the OpenAI embeddings API.
	ProviderOpenAI EmbeddingProvider = "openai"
)

// IsValid returns true if the provider is recognised.
func (p EmbeddingProvider) IsValid() bool {
	switch p {
	case ProviderGemini, ProviderOpenAI:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (p EmbeddingProvider) String() string {
	return string(p)
}

// Settings is the process-wide immutable configuration, built once at
// startup and injected into components.
type Settings struct {
	// APIKey is the credential for the embedding service.
	APIKey string

	// EmbeddingModel is the model identifier passed to the service.
	EmbeddingModel string

	// DatabasePath is the SQLite connection string (file path). Empty
	// means the store's default location.
	DatabasePath string

	// Provider selects the embedding service adapter.
	Provider EmbeddingProvider

	// BaseURL overrides the provider's default endpoint. Optional.
	BaseURL string

	// BatchSize is the number of chunks per embedding request.
	BatchSize int

	// TopK is the default number of search results.
	TopK int
}

// Validate checks that the required values are present. A missing value
// is a fatal configuration error.
func (s *Settings) Validate() error {
	if s.APIKey == "" {
		return fmt.Errorf("%w: missing embedding API key", ErrConfiguration)
	}
	if s.EmbeddingModel == "" {
		return fmt.Errorf("%w: missing embedding model", ErrConfiguration)
	}
	if !s.Provider.IsValid() {
		return fmt.Errorf("%w: unknown embedding provider %q", ErrConfiguration, s.Provider)
	}
	return nil
}
