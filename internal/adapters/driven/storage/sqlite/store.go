package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/candour-labs/semsearch-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/candour-labs/semsearch-cli/internal/core/domain"
	"github.com/candour-labs/semsearch-cli/internal/core/ports/driven"
	"github.com/candour-labs/semsearch-cli/internal/logger"
)

// Ensure Store implements the interface.
var _ driven.VectorStore = (*Store)(nil)

// Store is the SQLite-backed vector store. It owns the persisted chunk
// records and evaluates similarity scoring in the engine through the
// registered dot_product and vector_norm functions.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (or creates) the store at dbPath and ensures the
// schema. If dbPath is empty, it defaults to
// ~/.semsearch/data/index.db.
func NewStore(dbPath string) (*Store, error) {
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("%w: getting home directory: %w", domain.ErrDatabase, err)
		}
		dbPath = filepath.Join(home, ".semsearch", "data", "index.db")
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("%w: creating data directory: %w", domain.ErrDatabase, err)
	}

	// Scoring functions must be registered before the first connection
	// opens.
	registerVectorFunctions()

	// WAL mode for better concurrency between the indexer and searches.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("%w: opening database: %w", domain.ErrDatabase, err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %w", domain.ErrDatabase, err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// SaveChunks writes parallel chunk and embedding slices for one source
// in a single transaction. The vector norm is computed at write time by
// the registered vector_norm function, so it can never be stale
// relative to the stored vector.
func (s *Store) SaveChunks(
	ctx context.Context,
	source string,
	strategy domain.ChunkStrategy,
	chunks []string,
	embeddings [][]float32,
) error {
	if err := validateForIndexing(source, chunks, embeddings); err != nil {
		return err
	}

	logger.Info("Storing %d chunks for %q in a single batch", len(chunks), source)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: beginning transaction: %w", domain.ErrDatabase, err)
	}
	defer tx.Rollback() //nolint:errcheck

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO documents (id, source, chunk_text, split_strategy, embedding, embedding_norm)
		VALUES (?, ?, ?, ?, ?, vector_norm(?))
	`)
	if err != nil {
		return fmt.Errorf("%w: preparing statement: %w", domain.ErrDatabase, err)
	}
	defer stmt.Close()

	for i, chunk := range chunks {
		blob := float32SliceToBytes(embeddings[i])

		if _, err := stmt.ExecContext(ctx, uuid.New().String(), source, chunk,
			strategy.String(), blob, blob); err != nil {
			return fmt.Errorf("%w: saving chunk: %w", domain.ErrDatabase, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: committing transaction: %w", domain.ErrDatabase, err)
	}

	logger.Info("Stored %d chunks for %q", len(chunks), source)
	return nil
}

// validateForIndexing checks that data intended for indexing is
// consistent and not empty.
func validateForIndexing(source string, chunks []string, embeddings [][]float32) error {
	if strings.TrimSpace(source) == "" {
		return fmt.Errorf("%w: source identifier cannot be empty", domain.ErrValidation)
	}
	if len(chunks) == 0 {
		return fmt.Errorf("%w: chunks cannot be empty", domain.ErrValidation)
	}
	if len(embeddings) == 0 {
		return fmt.Errorf("%w: embeddings cannot be empty", domain.ErrValidation)
	}
	if len(chunks) != len(embeddings) {
		return fmt.Errorf("%w: chunk count (%d) doesn't match embedding count (%d)",
			domain.ErrValidation, len(chunks), len(embeddings))
	}
	return nil
}

// DeleteSource removes all records for one source. Failure is reported
// as a boolean outcome to keep the idempotent replace flow simple;
// deleting a source with no records succeeds.
func (s *Store) DeleteSource(ctx context.Context, source string) bool {
	res, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE source = ?", source)
	if err != nil {
		logger.Error("Failed to delete records for %q: %v", source, err)
		return false
	}

	if rows, err := res.RowsAffected(); err == nil {
		logger.Info("Deleted %d rows for %q", rows, source)
	}
	return true
}

// DeleteAll clears every record; used for a full index reset.
func (s *Store) DeleteAll(ctx context.Context) bool {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM documents"); err != nil {
		logger.Error("Failed to clear documents table: %v", err)
		return false
	}

	logger.Warn("Cleared all records from the documents table")
	return true
}

// ListSources returns the distinct stored source identifiers, sorted
// ascending.
func (s *Store) ListSources(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT DISTINCT source FROM documents ORDER BY source")
	if err != nil {
		return nil, fmt.Errorf("%w: querying sources: %w", domain.ErrDatabaseSearch, err)
	}
	defer rows.Close()

	var sources []string //nolint:prealloc // size unknown from query
	for rows.Next() {
		var source string
		if err := rows.Scan(&source); err != nil {
			return nil, fmt.Errorf("%w: scanning source: %w", domain.ErrDatabaseSearch, err)
		}
		sources = append(sources, source)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating sources: %w", domain.ErrDatabaseSearch, err)
	}

	return sources, nil
}

// SearchSimilar scores every record with a positive norm against the
// query vector inside the engine and returns the top k by cosine
// similarity, descending. Ties break by storage order (unspecified).
func (s *Store) SearchSimilar(
	ctx context.Context,
	query []float32,
	queryNorm float64,
	topK int,
) ([]domain.SearchResult, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT
			chunk_text,
			source,
			split_strategy,
			dot_product(embedding, ?) / (embedding_norm * ?) AS score
		FROM documents
		WHERE embedding_norm > 0
		ORDER BY score DESC
		LIMIT ?
	`, float32SliceToBytes(query), queryNorm, topK)
	if err != nil {
		return nil, fmt.Errorf("%w: similarity query: %w", domain.ErrDatabaseSearch, err)
	}
	defer rows.Close()

	var results []domain.SearchResult //nolint:prealloc // size unknown from query
	for rows.Next() {
		var r domain.SearchResult
		var strategy string
		if err := rows.Scan(&r.ChunkText, &r.Source, &strategy, &r.Score); err != nil {
			return nil, fmt.Errorf("%w: scanning result: %w", domain.ErrDatabaseSearch, err)
		}
		r.Strategy = domain.ChunkStrategy(strategy)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating results: %w", domain.ErrDatabaseSearch, err)
	}

	logger.Debug("Similarity query returned %d results", len(results))
	return results, nil
}
