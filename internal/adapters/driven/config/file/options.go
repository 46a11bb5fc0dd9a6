// Package file loads optional settings overrides from a TOML file.
// Secrets never live here; the credential always comes from the
// environment.
package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/candour-labs/semsearch-cli/internal/core/domain"
)

// Options mirrors the optional keys of config.toml. Zero values mean
// "not set" and defer to environment variables or defaults.
type Options struct {
	// Provider selects the embedding service: "gemini" or "openai".
	Provider string `toml:"provider"`

	// BaseURL overrides the provider endpoint, e.g. for a proxy.
	BaseURL string `toml:"base_url"`

	// EmbeddingModel is the model identifier.
	EmbeddingModel string `toml:"embedding_model"`

	// DatabasePath is the SQLite index location.
	DatabasePath string `toml:"database_path"`

	// BatchSize is the number of chunks per embedding request.
	BatchSize int `toml:"batch_size"`

	// TopK is the default number of search results.
	TopK int `toml:"top_k"`
}

// Load reads Options from the TOML file at path. A missing file is not
// an error; it yields zero Options. A malformed file fails with
// domain.ErrConfiguration.
func Load(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Options{}, nil
		}
		return nil, fmt.Errorf("%w: reading %s: %w", domain.ErrConfiguration, path, err)
	}

	var opts Options
	if err := toml.Unmarshal(data, &opts); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %w", domain.ErrConfiguration, path, err)
	}

	return &opts, nil
}
