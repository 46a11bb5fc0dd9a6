package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var indexDir bool

var indexCmd = &cobra.Command{
	Use:   "index [path]",
	Short: "Index a document or a folder of documents",
	Long: `Extracts text from the given file, splits it into paragraphs,
embeds each paragraph and stores the vectors. Re-indexing a file
replaces its previous chunks. With --dir the path is treated as a
folder and every supported file directly inside it is indexed.`,
	Args: cobra.ExactArgs(1),
	RunE: runIndex,
}

func init() {
	indexCmd.Flags().BoolVar(&indexDir, "dir", false, "index every supported file in the folder")
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}

	path := args[0]
	ctx := cmd.Context()

	if !indexDir {
		if err := indexService.IndexFile(ctx, path); err != nil {
			return fmt.Errorf("indexing failed: %w", err)
		}
		cmd.Printf("Indexed %s\n", path)
		return nil
	}

	stats, err := indexService.IndexDir(ctx, path)
	if err != nil {
		return fmt.Errorf("indexing failed: %w", err)
	}

	cmd.Printf("Indexed %d file(s), %d failed, %d skipped\n", stats.Indexed, stats.Failed, stats.Skipped)
	if stats.Failed > 0 {
		return fmt.Errorf("%d file(s) failed to index", stats.Failed)
	}
	return nil
}
