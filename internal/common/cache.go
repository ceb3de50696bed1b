package common

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/loterias-lab/backend/pkg/xcontext"
	"github.com/loterias-lab/backend/pkg/xredis"
)

// ResultCache keeps short-lived computed results shared by all requests.
type ResultCache interface {
	// Get decodes the cached value into v, it returns false on a miss or an
	// expired entry.
	Get(ctx context.Context, key string, v any) bool
	Set(ctx context.Context, key string, v any)
	Invalidate(ctx context.Context, key string)
}

type memoryEntry struct {
	data      []byte
	expiredAt time.Time
}

type MemoryCache struct {
	mutex   sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]memoryEntry
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]memoryEntry),
	}
}

func (c *MemoryCache) Get(ctx context.Context, key string, v any) bool {
	c.mutex.Lock()
	entry, ok := c.entries[key]
	if ok && !c.now().Before(entry.expiredAt) {
		delete(c.entries, key)
		ok = false
	}
	c.mutex.Unlock()

	if !ok {
		return false
	}

	if err := json.Unmarshal(entry.data, v); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot decode cached value of %s: %v", key, err)
		return false
	}

	return true
}

func (c *MemoryCache) Set(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot encode value of %s: %v", key, err)
		return
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.entries[key] = memoryEntry{data: data, expiredAt: c.now().Add(c.ttl)}
}

func (c *MemoryCache) Invalidate(ctx context.Context, key string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	delete(c.entries, key)
}

type RedisCache struct {
	client xredis.Client
	ttl    time.Duration
}

func NewRedisCache(client xredis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, key string, v any) bool {
	if err := c.client.GetObj(ctx, key, v); err != nil {
		if !errors.Is(err, xredis.ErrNil) {
			xcontext.Logger(ctx).Warnf("Cannot get cached value of %s: %v", key, err)
		}
		return false
	}

	return true
}

func (c *RedisCache) Set(ctx context.Context, key string, v any) {
	if err := c.client.SetObj(ctx, key, v, c.ttl); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot cache value of %s: %v", key, err)
	}
}

func (c *RedisCache) Invalidate(ctx context.Context, key string) {
	if err := c.client.Del(ctx, key); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot invalidate cached value of %s: %v", key, err)
	}
}

const LatestResultsCacheKey = "loterias:latest_results"
