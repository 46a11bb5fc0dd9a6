package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	searchLimit  int
	defaultLimit = 5
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search indexed documents",
	Long: `Embeds the query and returns the most similar indexed chunks,
ranked by cosine similarity. Multi-paragraph queries run one search
per paragraph and merge the results.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 5, "maximum number of results")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	limit := searchLimit
	if !cmd.Flags().Changed("limit") {
		limit = defaultLimit
	}

	results, err := searchService.Search(cmd.Context(), args[0], limit)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	cmd.Println(renderResults(results))
	return nil
}
