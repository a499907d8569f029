package uploader

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"github.com/rs/zerolog"
)

// ErrInvalidChunkSize is returned when chunk size is not positive.
var ErrInvalidChunkSize = errors.New("chunk size must be positive")

// SendFunc sends single batch.
type SendFunc[T any] func(ctx context.Context, batch []T) error

// Chunk returns lazy sequence of contiguous chunks of n items, the last chunk may be shorter.
// Chunks share memory with items.
func Chunk[T any](items []T, n int) (iter.Seq[[]T], error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidChunkSize, n)
	}

	return func(yield func([]T) bool) {
		for start := 0; start < len(items); start += n {
			end := min(start+n, len(items))
			if !yield(items[start:end:end]) {
				return
			}
		}
	}, nil
}

// Upload sends items in batches of batchSize, one after another.
// It stops at the first failed batch and returns number of successfully sent batches.
func Upload[T any](ctx context.Context, items []T, batchSize int, send SendFunc[T]) (int, error) {
	chunks, err := Chunk(items, batchSize)
	if err != nil {
		return 0, err
	}

	logger := zerolog.Ctx(ctx)
	sent := 0

	for batch := range chunks {
		if err := ctx.Err(); err != nil {
			return sent, err
		}

		if err := send(ctx, batch); err != nil {
			return sent, fmt.Errorf("can't upload batch %d (%d items): %w", sent+1, len(batch), err)
		}
		sent++

		logger.Debug().
			Int("batch", sent).
			Int("items", len(batch)).
			Msg("batch uploaded")
	}

	return sent, nil
}
