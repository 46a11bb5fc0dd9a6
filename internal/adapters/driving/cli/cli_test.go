package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/candour-labs/semsearch-cli/internal/core/domain"
	"github.com/candour-labs/semsearch-cli/internal/core/ports/driving"
)

type mockIndexService struct {
	indexed   []string
	dirStats  driving.IndexStats
	sources   []string
	indexErr  error
	resetErr  error
	resetRuns int
}

func (m *mockIndexService) IndexFile(_ context.Context, path string) error {
	if m.indexErr != nil {
		return m.indexErr
	}
	m.indexed = append(m.indexed, path)
	return nil
}

func (m *mockIndexService) IndexDir(context.Context, string) (driving.IndexStats, error) {
	return m.dirStats, m.indexErr
}

func (m *mockIndexService) ListSources(context.Context) ([]string, error) {
	return m.sources, nil
}

func (m *mockIndexService) Reset(context.Context) error {
	m.resetRuns++
	return m.resetErr
}

type mockSearchService struct {
	results []domain.SearchResult
	err     error
	query   string
	topK    int
}

func (m *mockSearchService) Search(_ context.Context, query string, topK int) ([]domain.SearchResult, error) {
	m.query = query
	m.topK = topK
	return m.results, m.err
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)
	defer resetFlagDefaults(rootCmd)

	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlagDefaults restores every parsed flag to its default so flag
// values bound to package-level vars do not leak between tests.
func resetFlagDefaults(cmd *cobra.Command) {
	cmd.Flags().Visit(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, sub := range cmd.Commands() {
		resetFlagDefaults(sub)
	}
}

func swapServices(t *testing.T, index driving.IndexService, search driving.SearchService) {
	t.Helper()
	oldIndex, oldSearch := indexService, searchService
	indexService, searchService = index, search
	t.Cleanup(func() {
		indexService, searchService = oldIndex, oldSearch
	})
}

func TestRootCmd_HasExpectedSubcommands(t *testing.T) {
	names := make([]string, 0)
	for _, cmd := range rootCmd.Commands() {
		names = append(names, cmd.Name())
	}

	assert.Contains(t, names, "index")
	assert.Contains(t, names, "search")
	assert.Contains(t, names, "list")
	assert.Contains(t, names, "reset")
	assert.Contains(t, names, "version")
}

func TestIndexCmd_RequiresPath(t *testing.T) {
	_, err := execute(t, "index")
	assert.Error(t, err)
}

func TestIndexCmd_WithoutServiceFails(t *testing.T) {
	swapServices(t, nil, nil)

	_, err := execute(t, "index", "notes.txt")
	assert.ErrorContains(t, err, "not configured")
}

func TestIndexCmd_IndexesFile(t *testing.T) {
	index := &mockIndexService{}
	swapServices(t, index, nil)

	out, err := execute(t, "index", "notes.txt")
	require.NoError(t, err)

	assert.Equal(t, []string{"notes.txt"}, index.indexed)
	assert.Contains(t, out, "Indexed notes.txt")
}

func TestIndexCmd_DirReportsStats(t *testing.T) {
	index := &mockIndexService{dirStats: driving.IndexStats{Indexed: 2, Skipped: 1}}
	swapServices(t, index, nil)

	out, err := execute(t, "index", "--dir", "docs")
	require.NoError(t, err)
	assert.Contains(t, out, "Indexed 2 file(s), 0 failed, 1 skipped")
}

func TestIndexCmd_DirFailuresExitNonZero(t *testing.T) {
	index := &mockIndexService{dirStats: driving.IndexStats{Indexed: 1, Failed: 2}}
	swapServices(t, index, nil)

	_, err := execute(t, "index", "--dir", "docs")
	assert.ErrorContains(t, err, "2 file(s) failed")
}

func TestSearchCmd_PassesQueryAndLimit(t *testing.T) {
	search := &mockSearchService{results: []domain.SearchResult{
		{ChunkText: "relevant text", Source: "notes.txt", Score: 0.91},
	}}
	swapServices(t, nil, search)

	out, err := execute(t, "search", "what is kubernetes", "-n", "3")
	require.NoError(t, err)

	assert.Equal(t, "what is kubernetes", search.query)
	assert.Equal(t, 3, search.topK)
	assert.Contains(t, out, "relevant text")
	assert.Contains(t, out, "notes.txt")
	assert.Contains(t, out, "91.0%")
}

func TestSearchCmd_NoResults(t *testing.T) {
	swapServices(t, nil, &mockSearchService{})

	out, err := execute(t, "search", "nothing matches")
	require.NoError(t, err)
	assert.Contains(t, out, "No results found for your search.")
}

func TestSearchCmd_PropagatesError(t *testing.T) {
	swapServices(t, nil, &mockSearchService{err: errors.New("store offline")})

	_, err := execute(t, "search", "query")
	assert.ErrorContains(t, err, "store offline")
}

func TestListCmd_PrintsSources(t *testing.T) {
	swapServices(t, &mockIndexService{sources: []string{"a.txt", "b.pdf"}}, nil)

	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Indexed sources (2):")
	assert.Contains(t, out, "a.txt")
	assert.Contains(t, out, "b.pdf")
}

func TestListCmd_EmptyIndex(t *testing.T) {
	swapServices(t, &mockIndexService{}, nil)

	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No documents indexed yet.")
}

func TestResetCmd_WithYesFlag(t *testing.T) {
	index := &mockIndexService{}
	swapServices(t, index, nil)

	out, err := execute(t, "reset", "--yes")
	require.NoError(t, err)
	assert.Equal(t, 1, index.resetRuns)
	assert.Contains(t, out, "Index cleared.")
}

func TestResetCmd_PromptDeclined(t *testing.T) {
	index := &mockIndexService{}
	swapServices(t, index, nil)

	rootCmd.SetIn(strings.NewReader("n\n"))
	defer rootCmd.SetIn(nil)

	out, err := execute(t, "reset")
	require.NoError(t, err)
	assert.Zero(t, index.resetRuns)
	assert.Contains(t, out, "Aborted.")
}

func TestResetCmd_PromptAccepted(t *testing.T) {
	index := &mockIndexService{}
	swapServices(t, index, nil)

	rootCmd.SetIn(strings.NewReader("y\n"))
	defer rootCmd.SetIn(nil)

	_, err := execute(t, "reset")
	require.NoError(t, err)
	assert.Equal(t, 1, index.resetRuns)
}

func TestVersionCmd_PrintsVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "semsearch version")
}

func TestRenderResults_RanksInOrder(t *testing.T) {
	out := renderResults([]domain.SearchResult{
		{ChunkText: "first", Source: "a.txt", Score: 0.9},
		{ChunkText: "second", Source: "b.txt", Score: 0.8},
	})

	assert.Less(t, strings.Index(out, "first"), strings.Index(out, "second"))
	assert.Contains(t, out, "90.0%")
	assert.Contains(t, out, "80.0%")
}
