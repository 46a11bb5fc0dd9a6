package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List indexed sources",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}

	sources, err := indexService.ListSources(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing sources failed: %w", err)
	}

	if len(sources) == 0 {
		cmd.Println("No documents indexed yet.")
		return nil
	}

	cmd.Printf("Indexed sources (%d):\n", len(sources))
	for _, source := range sources {
		cmd.Printf("  %s\n", source)
	}
	return nil
}
