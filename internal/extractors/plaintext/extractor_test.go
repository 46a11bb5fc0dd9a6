package plaintext

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/candour-labs/semsearch-cli/internal/core/domain"
)

func TestExtract(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("first\n\nsecond"), 0600))

	text, err := New().Extract(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "first\n\nsecond", text)
}

func TestExtract_MissingFile(t *testing.T) {
	_, err := New().Extract(context.Background(), filepath.Join(t.TempDir(), "gone.txt"))
	require.ErrorIs(t, err, domain.ErrDocumentProcessing)
}

func TestExtract_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blank.md")
	require.NoError(t, os.WriteFile(path, []byte("  \n\t\n"), 0600))

	_, err := New().Extract(context.Background(), path)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExtensions(t *testing.T) {
	assert.Equal(t, []string{".txt", ".md"}, New().Extensions())
}
