package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors and are matched with
// errors.Is after wrapping.
var (
	// ErrInvalidInput indicates empty or malformed caller input, such as
	// chunking whitespace-only text.
	ErrInvalidInput = errors.New("invalid input")

	// ErrValidation indicates the caller supplied empty or mismatched
	// data to a store or search operation. Always recoverable by the
	// caller.
	ErrValidation = errors.New("validation failed")

	// ErrConfiguration indicates required settings are missing or
	// invalid. Indexing and search cannot proceed.
	ErrConfiguration = errors.New("configuration error")

	// ErrEmbeddingGeneration indicates the remote embedding service
	// failed after the local retry budget was spent.
	ErrEmbeddingGeneration = errors.New("embedding generation failed")

	// ErrDatabase indicates a storage connection or write failure.
	// Writes roll back fully before this surfaces.
	ErrDatabase = errors.New("database error")

	// ErrDatabaseSearch indicates a storage read or ranked-query failure.
	ErrDatabaseSearch = errors.New("database search error")

	// ErrDocumentProcessing indicates the text-extraction collaborator
	// could not read or process a document file.
	ErrDocumentProcessing = errors.New("document processing failed")

	// ErrUnsupportedFormat indicates a file extension no extractor
	// handles.
	ErrUnsupportedFormat = errors.New("unsupported file format")
)
