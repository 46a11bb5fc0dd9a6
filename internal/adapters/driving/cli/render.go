package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/candour-labs/semsearch-cli/internal/core/domain"
)

var (
	rankStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true)
	sourceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4"))
	scoreStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
)

// renderResults formats ranked search results for the terminal.
func renderResults(results []domain.SearchResult) string {
	if len(results) == 0 {
		return mutedStyle.Render("No results found for your search.")
	}

	var b strings.Builder
	for i, result := range results {
		header := fmt.Sprintf("%s Source: %s | Similarity: %s",
			rankStyle.Render(fmt.Sprintf("%d.", i+1)),
			sourceStyle.Render(result.Source),
			scoreStyle.Render(fmt.Sprintf("%.1f%%", result.Score*100)),
		)
		b.WriteString(header)
		b.WriteString("\n")
		b.WriteString(result.ChunkText)
		if i < len(results)-1 {
			b.WriteString("\n\n")
		}
	}
	return b.String()
}
