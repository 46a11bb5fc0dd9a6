// Package domain defines the core business entities for semsearch.
//
// This package is part of the hexagonal architecture's innermost layer.
// It holds the chunking and search-result models, the configuration
// surface, and the error taxonomy. It depends on nothing outside the
// standard library.
package domain
