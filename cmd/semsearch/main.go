// semsearch indexes local documents into a SQLite vector store and
// searches them by cosine similarity over text embeddings.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/candour-labs/semsearch-cli/internal/adapters/driven/config/env"
	"github.com/candour-labs/semsearch-cli/internal/adapters/driven/config/file"
	"github.com/candour-labs/semsearch-cli/internal/adapters/driven/embedding"
	"github.com/candour-labs/semsearch-cli/internal/adapters/driven/storage/sqlite"
	"github.com/candour-labs/semsearch-cli/internal/adapters/driving/cli"
	"github.com/candour-labs/semsearch-cli/internal/core/services"
	"github.com/candour-labs/semsearch-cli/internal/extractors"
	"github.com/candour-labs/semsearch-cli/internal/extractors/docx"
	"github.com/candour-labs/semsearch-cli/internal/extractors/pdf"
	"github.com/candour-labs/semsearch-cli/internal/extractors/plaintext"
	"github.com/candour-labs/semsearch-cli/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	opts, err := file.Load(configPath())
	if err != nil {
		return err
	}

	settings, err := env.Load(opts)
	if err != nil {
		return err
	}

	store, err := sqlite.NewStore(settings.DatabasePath)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("closing store: %v", err)
		}
	}()

	embedder, err := embedding.NewService(settings)
	if err != nil {
		return err
	}
	defer embedder.Close()

	registry := extractors.NewRegistry(
		plaintext.New(),
		docx.New(),
		pdf.New(),
	)

	cli.Configure(
		services.NewIndexService(store, embedder, registry),
		services.NewSearchService(store, embedder),
		settings.TopK,
	)

	return cli.Execute(ctx)
}

// configPath returns ~/.semsearch/config.toml, falling back to the
// working directory when the home directory cannot be resolved.
func configPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".semsearch", "config.toml")
}
