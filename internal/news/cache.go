package news

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"tresnow/internal/model"
)

// DefaultCacheTTL matches the SPA's five-minute article cache.
const DefaultCacheTTL = 5 * time.Minute

// Cache stores a resolved working set per query so repeated listing calls
// do not re-walk the source chain. Misses and errors both read as a miss.
type Cache interface {
	Get(ctx context.Context, query string) ([]model.Article, string, bool)
	Set(ctx context.Context, query, source string, articles []model.Article)
}

type memoryEntry struct {
	articles []model.Article
	source   string
	storedAt time.Time
}

// MemoryCache is a single-process cache with an injected clock so expiry is
// testable.
type MemoryCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]memoryEntry
}

func NewMemoryCache(ttl time.Duration, now func() time.Time) *MemoryCache {
	if now == nil {
		now = time.Now
	}
	return &MemoryCache{
		ttl:     ttl,
		now:     now,
		entries: make(map[string]memoryEntry),
	}
}

func (c *MemoryCache) Get(_ context.Context, query string) ([]model.Article, string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[query]
	if !ok {
		return nil, "", false
	}
	if c.now().Sub(entry.storedAt) > c.ttl {
		delete(c.entries, query)
		return nil, "", false
	}
	return entry.articles, entry.source, true
}

func (c *MemoryCache) Set(_ context.Context, query, source string, articles []model.Article) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[query] = memoryEntry{articles: articles, source: source, storedAt: c.now()}
}

type redisPayload struct {
	Source   string          `json:"source"`
	Articles []model.Article `json:"articles"`
}

// RedisCache shares the working set across processes. Expiry is delegated to
// redis key TTLs.
type RedisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisCache(addr string, ttl time.Duration) (*RedisCache, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return &RedisCache{rdb: rdb, ttl: ttl}, nil
}

func (c *RedisCache) Get(ctx context.Context, query string) ([]model.Article, string, bool) {
	val, err := c.rdb.Get(ctx, cacheKey(query)).Bytes()
	if err != nil {
		return nil, "", false
	}
	var payload redisPayload
	if err := json.Unmarshal(val, &payload); err != nil {
		return nil, "", false
	}
	return payload.Articles, payload.Source, true
}

func (c *RedisCache) Set(ctx context.Context, query, source string, articles []model.Article) {
	data, err := json.Marshal(redisPayload{Source: source, Articles: articles})
	if err != nil {
		return
	}
	c.rdb.Set(ctx, cacheKey(query), data, c.ttl)
}

func (c *RedisCache) Close() error {
	return c.rdb.Close()
}

func cacheKey(query string) string {
	return "articles:" + query
}
