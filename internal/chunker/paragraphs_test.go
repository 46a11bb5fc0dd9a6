package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/candour-labs/semsearch-cli/internal/core/domain"
)

func TestByParagraphs_SplitsOnBlankLines(t *testing.T) {
	text := "first paragraph\n\nsecond paragraph\n\nthird paragraph"

	chunks, err := ByParagraphs(text)
	require.NoError(t, err)

	assert.Equal(t, []string{"first paragraph", "second paragraph", "third paragraph"}, chunks)
}

func TestByParagraphs_CollapsesBlankLineRuns(t *testing.T) {
	// Inconsistent spacing from format conversion must not fragment
	// or multiply chunks.
	text := "alpha\n\n\n\nbeta\n \n\t\ngamma"

	chunks, err := ByParagraphs(text)
	require.NoError(t, err)

	assert.Equal(t, []string{"alpha", "beta", "gamma"}, chunks)
}

func TestByParagraphs_TrimsAndDropsEmptyChunks(t *testing.T) {
	text := "  padded paragraph  \n\n   \n\nnext one\n\n"

	chunks, err := ByParagraphs(text)
	require.NoError(t, err)

	assert.Equal(t, []string{"padded paragraph", "next one"}, chunks)
}

func TestByParagraphs_SingleParagraph(t *testing.T) {
	chunks, err := ByParagraphs("just one paragraph, no breaks")
	require.NoError(t, err)

	assert.Equal(t, []string{"just one paragraph, no breaks"}, chunks)
}

func TestByParagraphs_EmptyInput(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "empty string", text: ""},
		{name: "spaces only", text: "   "},
		{name: "newlines only", text: "\n\n\n"},
		{name: "mixed whitespace", text: " \t \n \t\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks, err := ByParagraphs(tt.text)
			require.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Nil(t, chunks)
		})
	}
}

func TestByParagraphs_IdempotentOnNormalisedInput(t *testing.T) {
	// Re-chunking the rejoined chunks yields the same sequence.
	text := "one\n\n\ntwo  \n\nthree\nstill three\n\n\n\nfour"

	first, err := ByParagraphs(text)
	require.NoError(t, err)

	second, err := ByParagraphs(strings.Join(first, "\n\n"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestByParagraphs_PreservesSourceOrder(t *testing.T) {
	text := "z last alphabetically\n\na first alphabetically\n\nm middle"

	chunks, err := ByParagraphs(text)
	require.NoError(t, err)

	require.Len(t, chunks, 3)
	assert.Equal(t, "z last alphabetically", chunks[0])
	assert.Equal(t, "a first alphabetically", chunks[1])
	assert.Equal(t, "m middle", chunks[2])
}
