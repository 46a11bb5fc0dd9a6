// Package driven provides interfaces for infrastructure adapters
// (secondary/outbound ports): the remote embedding service, the vector
// store, and the text-extraction collaborators.
package driven
