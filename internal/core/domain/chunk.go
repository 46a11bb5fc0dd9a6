package domain

// ChunkStrategy identifies how a document was split into chunks.
type ChunkStrategy string

// Available chunking strategies.
const (
	// StrategyParagraph splits on blank-line paragraph boundaries.
	StrategyParagraph ChunkStrategy = "paragraph"
)

// String returns the string representation.
func (s ChunkStrategy) String() string {
	return string(s)
}
