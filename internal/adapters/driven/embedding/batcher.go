// Package embedding provides the batching and retry layer over a raw
// embedding provider. Providers make one remote call per invocation;
// the Batcher turns an arbitrary chunk list into fixed-size sequential
// requests with bounded retry and request pacing.
package embedding

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/candour-labs/semsearch-cli/internal/core/domain"
	"github.com/candour-labs/semsearch-cli/internal/core/ports/driven"
	"github.com/candour-labs/semsearch-cli/internal/logger"
)

// Ensure Batcher implements the interface.
var _ driven.EmbeddingService = (*Batcher)(nil)

// Default configuration values.
const (
	// DefaultBatchSize bounds request size and respects upstream rate
	// limits.
	DefaultBatchSize = 10

	// DefaultMaxAttempts is the total attempts per batch, including the
	// first.
	DefaultMaxAttempts = 3

	// DefaultBackoffBase is the wait before the second attempt; it
	// doubles for each further attempt.
	DefaultBackoffBase = time.Second

	// DefaultBatchPause is the pause between successful batches.
	DefaultBatchPause = 100 * time.Millisecond
)

// Batcher decorates an embedding provider with fixed-size batching,
// per-batch retry with exponential backoff, and a short pause between
// successful batches. Batches are submitted sequentially so output
// order trivially matches input order.
type Batcher struct {
	provider    driven.EmbeddingService
	batchSize   int
	maxAttempts int
	backoffBase time.Duration
	limiter     *rate.Limiter
}

// Option configures a Batcher.
type Option func(*Batcher)

// WithBatchSize sets the number of texts per provider call.
func WithBatchSize(n int) Option {
	return func(b *Batcher) {
		if n > 0 {
			b.batchSize = n
		}
	}
}

// WithMaxAttempts sets the total attempts per batch.
func WithMaxAttempts(n int) Option {
	return func(b *Batcher) {
		if n > 0 {
			b.maxAttempts = n
		}
	}
}

// WithBackoffBase sets the wait before the second attempt.
func WithBackoffBase(d time.Duration) Option {
	return func(b *Batcher) {
		if d >= 0 {
			b.backoffBase = d
		}
	}
}

// WithBatchPause sets the pause between successful batches.
func WithBatchPause(d time.Duration) Option {
	return func(b *Batcher) {
		if d > 0 {
			b.limiter = rate.NewLimiter(rate.Every(d), 1)
		}
	}
}

// NewBatcher wraps a provider with batching, retry and pacing.
func NewBatcher(provider driven.EmbeddingService, opts ...Option) *Batcher {
	b := &Batcher{
		provider:    provider,
		batchSize:   DefaultBatchSize,
		maxAttempts: DefaultMaxAttempts,
		backoffBase: DefaultBackoffBase,
		limiter:     rate.NewLimiter(rate.Every(DefaultBatchPause), 1),
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// EmbedBatch generates embeddings for all texts, preserving exact 1:1
// correspondence with input order. An empty input fails with
// domain.ErrInvalidInput; a batch that keeps failing after the retry
// budget fails with domain.ErrEmbeddingGeneration wrapping the final
// attempt's error.
func (b *Batcher) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("%w: no texts to embed", domain.ErrInvalidInput)
	}

	total := (len(texts) + b.batchSize - 1) / b.batchSize
	logger.Info("Generating embeddings for %d texts in %d batches", len(texts), total)

	embeddings := make([][]float32, 0, len(texts))

	for start := 0; start < len(texts); start += b.batchSize {
		end := start + b.batchSize
		if end > len(texts) {
			end = len(texts)
		}
		batch := texts[start:end]

		// The limiter admits the first batch immediately and spaces the
		// rest, so there is no trailing pause after the last batch.
		if err := b.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrEmbeddingGeneration, err)
		}

		logger.Debug("Embedding batch %d/%d (texts %d-%d)", start/b.batchSize+1, total, start+1, end)

		vectors, err := b.embedWithRetry(ctx, batch)
		if err != nil {
			return nil, err
		}

		if len(vectors) != len(batch) {
			return nil, fmt.Errorf("%w: provider returned %d vectors for %d texts",
				domain.ErrEmbeddingGeneration, len(vectors), len(batch))
		}

		embeddings = append(embeddings, vectors...)
	}

	logger.Info("Generated %d embeddings", len(embeddings))
	return embeddings, nil
}

// embedWithRetry submits one batch, retrying with exponential backoff.
func (b *Batcher) embedWithRetry(ctx context.Context, batch []string) ([][]float32, error) {
	var lastErr error

	for attempt := 1; attempt <= b.maxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %w", domain.ErrEmbeddingGeneration, ctx.Err())
		default:
		}

		vectors, err := b.provider.EmbedBatch(ctx, batch)
		if err == nil {
			if attempt > 1 {
				logger.Debug("Embedding batch succeeded on attempt %d", attempt)
			}
			return vectors, nil
		}
		lastErr = err

		if attempt == b.maxAttempts {
			break
		}

		// backoffBase * 2^(attempt-1): 1s before the 2nd attempt, 2s
		// before the 3rd.
		delay := b.backoffBase << (attempt - 1)
		logger.Warn("Embedding attempt %d failed, retrying in %s: %v", attempt, delay, err)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, fmt.Errorf("%w: %w", domain.ErrEmbeddingGeneration, ctx.Err())
		case <-timer.C:
		}
	}

	logger.Error("All %d embedding attempts failed: %v", b.maxAttempts, lastErr)
	return nil, fmt.Errorf("%w: after %d attempts: %w", domain.ErrEmbeddingGeneration, b.maxAttempts, lastErr)
}

// ModelName returns the wrapped provider's model name.
func (b *Batcher) ModelName() string {
	return b.provider.ModelName()
}

// Ping validates the wrapped provider is reachable.
func (b *Batcher) Ping(ctx context.Context) error {
	return b.provider.Ping(ctx)
}

// Close releases the wrapped provider's resources.
func (b *Batcher) Close() error {
	return b.provider.Close()
}
