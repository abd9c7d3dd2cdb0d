package geocoding

import (
	"context"
	"encoding/json"
	"time"

	"riskmonitor/internal/domain/entity"

	goredis "github.com/redis/go-redis/v9"
)

type placeCache interface {
	get(ctx context.Context, key string) (*entity.Place, bool)
	set(ctx context.Context, key string, place *entity.Place, ttl time.Duration) error
}

type noCache struct{}

func (noCache) get(context.Context, string) (*entity.Place, bool) { return nil, false }

func (noCache) set(context.Context, string, *entity.Place, time.Duration) error { return nil }

type redisCache struct {
	client goredis.Cmdable
}

func newRedisCache(client goredis.Cmdable) *redisCache {
	return &redisCache{client: client}
}

// get treats every miss, outage or undecodable entry as a cache miss
func (c *redisCache) get(ctx context.Context, key string) (*entity.Place, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}

	var place entity.Place
	if err := json.Unmarshal(data, &place); err != nil {
		return nil, false
	}

	return &place, true
}

func (c *redisCache) set(ctx context.Context, key string, place *entity.Place, ttl time.Duration) error {
	b, err := json.Marshal(place)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key, b, ttl).Err()
}
