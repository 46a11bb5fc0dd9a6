package driven

import "context"

// Extractor pulls raw text out of a document file. The core treats the
// output as an opaque string with no format assumptions beyond
// paragraph-separable text.
type Extractor interface {
	// Extract returns the text content of the file at path. A file that
	// cannot be read or parsed fails with domain.ErrDocumentProcessing;
	// a file whose text is empty after extraction fails with
	// domain.ErrInvalidInput.
	Extract(ctx context.Context, path string) (string, error)

	// Extensions returns the lower-case file extensions this extractor
	// handles, including the leading dot.
	Extensions() []string
}
