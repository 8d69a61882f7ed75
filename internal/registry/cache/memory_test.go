package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kycnet/internal/registry/models"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()

	t.Run("miss then hit", func(t *testing.T) {
		c := NewMemory(time.Minute)

		_, err := c.Find(ctx, "alice")
		assert.ErrorIs(t, err, ErrNotFound)

		require.NoError(t, c.Save(ctx, &models.Customer{UserName: "alice", Data: "d", Verified: true}))

		got, err := c.Find(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, "d", got.Data)
		assert.True(t, got.Verified)
	})

	t.Run("returned record is a copy", func(t *testing.T) {
		c := NewMemory(time.Minute)
		require.NoError(t, c.Save(ctx, &models.Customer{UserName: "alice", Upvotes: 1}))

		got, err := c.Find(ctx, "alice")
		require.NoError(t, err)
		got.Upvotes = 99

		again, err := c.Find(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, 1, again.Upvotes)
	})

	t.Run("invalidate removes the entry", func(t *testing.T) {
		c := NewMemory(time.Minute)
		require.NoError(t, c.Save(ctx, &models.Customer{UserName: "alice"}))
		require.NoError(t, c.Invalidate(ctx, "alice"))

		_, err := c.Find(ctx, "alice")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("entries expire after the TTL", func(t *testing.T) {
		c := NewMemory(time.Minute)
		current := time.Now()
		c.now = func() time.Time { return current }

		require.NoError(t, c.Save(ctx, &models.Customer{UserName: "alice"}))

		current = current.Add(30 * time.Second)
		_, err := c.Find(ctx, "alice")
		require.NoError(t, err)

		current = current.Add(31 * time.Second)
		_, err = c.Find(ctx, "alice")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
