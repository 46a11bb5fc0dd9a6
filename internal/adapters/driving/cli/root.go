// Package cli implements the semsearch command-line interface.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/candour-labs/semsearch-cli/internal/core/ports/driving"
	"github.com/candour-labs/semsearch-cli/internal/logger"
)

// version is overridden at build time via -ldflags.
var version = "dev"

// Services are injected by main before Execute runs. Commands nil-check
// them so --help and version work without any configuration.
var (
	indexService  driving.IndexService
	searchService driving.SearchService
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "semsearch",
	Short: "Semantic search over local documents",
	Long: `semsearch indexes local documents into a vector database and
answers free-text queries by cosine similarity over their embeddings.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Configure injects the application services into the command tree and
// sets the configured default result count.
func Configure(index driving.IndexService, search driving.SearchService, topK int) {
	indexService = index
	searchService = search
	if topK > 0 {
		defaultLimit = topK
	}
}

// Execute runs the root command with the given context.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
