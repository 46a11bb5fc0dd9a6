package embedding

import (
	"fmt"

	"github.com/candour-labs/semsearch-cli/internal/adapters/driven/embedding/gemini"
	"github.com/candour-labs/semsearch-cli/internal/adapters/driven/embedding/openai"
	"github.com/candour-labs/semsearch-cli/internal/core/domain"
	"github.com/candour-labs/semsearch-cli/internal/core/ports/driven"
)

// NewService builds the configured provider and wraps it in a Batcher.
// Missing or invalid settings fail with domain.ErrConfiguration.
func NewService(settings *domain.Settings, opts ...Option) (driven.EmbeddingService, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	provider, err := newProvider(settings)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrConfiguration, err)
	}

	if settings.BatchSize > 0 {
		opts = append([]Option{WithBatchSize(settings.BatchSize)}, opts...)
	}

	return NewBatcher(provider, opts...), nil
}

func newProvider(settings *domain.Settings) (driven.EmbeddingService, error) {
	switch settings.Provider {
	case domain.ProviderGemini:
		return gemini.NewEmbeddingService(gemini.Config{
			APIKey:  settings.APIKey,
			BaseURL: settings.BaseURL,
			Model:   settings.EmbeddingModel,
		})
	case domain.ProviderOpenAI:
		return openai.NewEmbeddingService(openai.Config{
			APIKey:  settings.APIKey,
			BaseURL: settings.BaseURL,
			Model:   settings.EmbeddingModel,
		})
	default:
		return nil, fmt.Errorf("unknown embedding provider %q", settings.Provider)
	}
}
