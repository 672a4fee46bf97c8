package news

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tresnow/internal/model"
)

func sampleArticles() []model.Article {
	return []model.Article{
		{ID: "tres-001", Title: "First", Category: "Luxury"},
		{ID: "tres-002", Title: "Second", Category: "Streetwear"},
	}
}

func TestMemoryCache_HitAndExpiry(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	cache := NewMemoryCache(5*time.Minute, clock)
	ctx := context.Background()

	_, _, ok := cache.Get(ctx, "fashion")
	assert.False(t, ok, "empty cache must miss")

	cache.Set(ctx, "fashion", "Generated Content", sampleArticles())

	articles, source, ok := cache.Get(ctx, "fashion")
	require.True(t, ok)
	assert.Equal(t, "Generated Content", source)
	assert.Len(t, articles, 2)

	// Advance the clock past the TTL.
	now = now.Add(5*time.Minute + time.Second)
	_, _, ok = cache.Get(ctx, "fashion")
	assert.False(t, ok, "entry must expire after the TTL")
}

func TestMemoryCache_KeysAreIndependent(t *testing.T) {
	cache := NewMemoryCache(5*time.Minute, nil)
	ctx := context.Background()

	cache.Set(ctx, "fashion", "Generated Content", sampleArticles())

	_, _, ok := cache.Get(ctx, "sneakers")
	assert.False(t, ok)
}

func TestRedisCache_RoundTrip(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	cache, err := NewRedisCache(mr.Addr(), 5*time.Minute)
	require.NoError(t, err)
	defer cache.Close()

	ctx := context.Background()
	cache.Set(ctx, "fashion", "NewsAPI", sampleArticles())

	articles, source, ok := cache.Get(ctx, "fashion")
	require.True(t, ok)
	assert.Equal(t, "NewsAPI", source)
	require.Len(t, articles, 2)
	assert.Equal(t, "tres-001", articles[0].ID)
}

func TestRedisCache_Expiry(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	cache, err := NewRedisCache(mr.Addr(), 5*time.Minute)
	require.NoError(t, err)
	defer cache.Close()

	ctx := context.Background()
	cache.Set(ctx, "fashion", "NewsAPI", sampleArticles())

	mr.FastForward(5*time.Minute + time.Second)

	_, _, ok := cache.Get(ctx, "fashion")
	assert.False(t, ok, "redis TTL must expire the entry")
}

func TestRedisCache_ConnectFailure(t *testing.T) {
	_, err := NewRedisCache("127.0.0.1:1", time.Minute)
	assert.Error(t, err)
}
