package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryIdempotencyStore(t *testing.T) {
	ctx := context.Background()

	t.Run("first mark wins", func(t *testing.T) {
		store := NewMemoryIdempotencyStore()
		defer store.Close()

		newly, err := store.MarkProcessed(ctx, "key-1", time.Minute)
		require.NoError(t, err)
		assert.True(t, newly)

		newly, err = store.MarkProcessed(ctx, "key-1", time.Minute)
		require.NoError(t, err)
		assert.False(t, newly)
	})

	t.Run("is processed reflects marks", func(t *testing.T) {
		store := NewMemoryIdempotencyStore()
		defer store.Close()

		processed, err := store.IsProcessed(ctx, "key-1")
		require.NoError(t, err)
		assert.False(t, processed)

		_, err = store.MarkProcessed(ctx, "key-1", time.Minute)
		require.NoError(t, err)

		processed, err = store.IsProcessed(ctx, "key-1")
		require.NoError(t, err)
		assert.True(t, processed)
	})

	t.Run("expired keys can be marked again", func(t *testing.T) {
		store := NewMemoryIdempotencyStore()
		defer store.Close()

		_, err := store.MarkProcessed(ctx, "key-1", time.Nanosecond)
		require.NoError(t, err)
		time.Sleep(time.Millisecond)

		processed, err := store.IsProcessed(ctx, "key-1")
		require.NoError(t, err)
		assert.False(t, processed)

		newly, err := store.MarkProcessed(ctx, "key-1", time.Minute)
		require.NoError(t, err)
		assert.True(t, newly)
	})

	t.Run("cleanup drops expired entries", func(t *testing.T) {
		store := NewMemoryIdempotencyStore()
		defer store.Close()

		_, err := store.MarkProcessed(ctx, "key-1", time.Nanosecond)
		require.NoError(t, err)
		time.Sleep(time.Millisecond)

		store.cleanup()
		assert.Zero(t, store.Size())
	})

	t.Run("close is idempotent", func(t *testing.T) {
		store := NewMemoryIdempotencyStore()
		require.NoError(t, store.Close())
		require.NoError(t, store.Close())
	})
}
