package common

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/loterias-lab/backend/pkg/testutil"
	"github.com/loterias-lab/backend/pkg/xredis"
	"github.com/stretchr/testify/require"
)

type cachedValue struct {
	Name  string
	Count int
}

func Test_MemoryCache(t *testing.T) {
	ctx := context.Background()
	current := time.Now()

	c := NewMemoryCache(time.Minute)
	c.now = func() time.Time { return current }

	var v cachedValue
	require.False(t, c.Get(ctx, "key", &v))

	c.Set(ctx, "key", cachedValue{Name: "megasena", Count: 3})
	require.True(t, c.Get(ctx, "key", &v))
	require.Equal(t, cachedValue{Name: "megasena", Count: 3}, v)

	current = current.Add(59 * time.Second)
	require.True(t, c.Get(ctx, "key", &v))

	current = current.Add(time.Second)
	require.False(t, c.Get(ctx, "key", &v))

	c.Set(ctx, "key", cachedValue{Name: "quina"})
	c.Invalidate(ctx, "key")
	require.False(t, c.Get(ctx, "key", &v))
}

func Test_RedisCache(t *testing.T) {
	ctx := context.Background()
	store := map[string][]byte{}
	var ttls []time.Duration

	client := &testutil.MockRedisClient{
		SetObjFunc: func(ctx context.Context, key string, obj any, ttl time.Duration) error {
			b, err := json.Marshal(obj)
			if err != nil {
				return err
			}
			store[key] = b
			ttls = append(ttls, ttl)
			return nil
		},
		GetObjFunc: func(ctx context.Context, key string, v any) error {
			b, ok := store[key]
			if !ok {
				return xredis.ErrNil
			}
			return json.Unmarshal(b, v)
		},
		DelFunc: func(ctx context.Context, keys ...string) error {
			for _, k := range keys {
				delete(store, k)
			}
			return nil
		},
	}

	c := NewRedisCache(client, 5*time.Minute)

	var v cachedValue
	require.False(t, c.Get(ctx, "key", &v))

	c.Set(ctx, "key", cachedValue{Name: "lotofacil", Count: 15})
	require.Equal(t, []time.Duration{5 * time.Minute}, ttls)
	require.True(t, c.Get(ctx, "key", &v))
	require.Equal(t, cachedValue{Name: "lotofacil", Count: 15}, v)

	c.Invalidate(ctx, "key")
	require.False(t, c.Get(ctx, "key", &v))
}
