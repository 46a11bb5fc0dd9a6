// Package env builds the process-wide Settings from environment
// variables, with a .env file loaded first if present. Settings are
// constructed once at startup and injected; components never look up
// the environment themselves.
package env

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/candour-labs/semsearch-cli/internal/adapters/driven/config/file"
	"github.com/candour-labs/semsearch-cli/internal/core/domain"
	"github.com/candour-labs/semsearch-cli/internal/logger"
)

// Environment variable names.
const (
	EnvGeminiAPIKey = "GEMINI_API_KEY"
	EnvOpenAIAPIKey = "OPENAI_API_KEY"
	EnvModel        = "EMBEDDING_MODEL"
	EnvDatabasePath = "DATABASE_PATH"
	EnvProvider     = "SEMSEARCH_PROVIDER"
	EnvBaseURL      = "SEMSEARCH_BASE_URL"
)

// DefaultTopK is the result count when neither flag nor config set one.
const DefaultTopK = 5

// Load builds Settings from the environment layered over the optional
// file overrides. Environment variables win over the file; the file
// wins over defaults. Missing required values surface through
// Settings.Validate as domain.ErrConfiguration at first use.
func Load(opts *file.Options) (*domain.Settings, error) {
	// A .env in the working directory is a development convenience;
	// its absence is not an error.
	if err := godotenv.Load(); err == nil {
		logger.Debug("Loaded .env file")
	}

	if opts == nil {
		opts = &file.Options{}
	}

	provider := domain.EmbeddingProvider(firstNonEmpty(os.Getenv(EnvProvider), opts.Provider, domain.ProviderGemini.String()))

	settings := &domain.Settings{
		APIKey:         apiKeyFor(provider),
		EmbeddingModel: firstNonEmpty(os.Getenv(EnvModel), opts.EmbeddingModel),
		DatabasePath:   firstNonEmpty(os.Getenv(EnvDatabasePath), opts.DatabasePath),
		Provider:       provider,
		BaseURL:        firstNonEmpty(os.Getenv(EnvBaseURL), opts.BaseURL),
		BatchSize:      opts.BatchSize,
		TopK:           opts.TopK,
	}
	if settings.TopK <= 0 {
		settings.TopK = DefaultTopK
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	logger.Info("Configuration loaded: provider=%s model=%s", settings.Provider, settings.EmbeddingModel)
	return settings, nil
}

// apiKeyFor resolves the credential variable for the provider.
func apiKeyFor(provider domain.EmbeddingProvider) string {
	switch provider {
	case domain.ProviderOpenAI:
		return os.Getenv(EnvOpenAIAPIKey)
	default:
		return os.Getenv(EnvGeminiAPIKey)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
