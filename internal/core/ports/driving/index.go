package driving

import "context"

// IndexStats summarises a folder indexing run.
type IndexStats struct {
	// Indexed is the number of files stored successfully.
	Indexed int

	// Failed is the number of files that could not be indexed.
	Failed int

	// Skipped is the number of files with no supported extractor.
	Skipped int
}

// IndexService runs the per-document indexing pipeline.
type IndexService interface {
	// IndexFile replaces any stored records for the file and indexes it
	// end to end: extract, chunk, embed, store. The operation is
	// idempotent per path; failure at any step leaves the previous
	// records deleted but writes nothing partial.
	IndexFile(ctx context.Context, path string) error

	// IndexDir indexes every supported file directly inside dir,
	// continuing past per-file failures.
	IndexDir(ctx context.Context, dir string) (IndexStats, error)

	// ListSources returns the indexed source identifiers, sorted.
	ListSources(ctx context.Context) ([]string, error)

	// Reset removes every stored record.
	Reset(ctx context.Context) error
}
