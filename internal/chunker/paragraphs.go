// Package chunker splits raw text into paragraph-granularity retrieval
// units.
package chunker

import (
	"regexp"
	"strings"

	"github.com/candour-labs/semsearch-cli/internal/core/domain"
)

// blankRuns matches any run of two or more newlines with optional
// whitespace between them. Format conversion (PDF extraction in
// particular) produces inconsistent paragraph breaks; collapsing the
// runs first keeps spacing noise from fragmenting chunks.
var blankRuns = regexp.MustCompile(`(\n\s*){2,}`)

// ByParagraphs splits text on blank-line paragraph boundaries.
//
// Each chunk is trimmed of surrounding whitespace and empty chunks are
// dropped. The function is pure and deterministic: the same input
// always yields the same chunks in source order. Empty or
// whitespace-only input fails with domain.ErrInvalidInput.
func ByParagraphs(text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrInvalidInput
	}

	normalised := blankRuns.ReplaceAllString(text, "\n\n")

	parts := strings.Split(normalised, "\n\n")
	chunks := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		chunks = append(chunks, part)
	}

	return chunks, nil
}
