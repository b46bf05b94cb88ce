package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/Vigilancia-api/internal/application/features"
)

var _ features.FlagCache = (*FeatureFlagCache)(nil)

// KeyPrefix prefijo de las claves de flags en Redis.
const KeyPrefix = "feature_flag:"

// FeatureFlagCache guarda el estado de cada flag como "1"/"0" en feature_flag:<key>.
type FeatureFlagCache struct {
	client redis.Cmdable
}

// NewFeatureFlagCache construye el cache sobre un cliente (o mock) de go-redis.
func NewFeatureFlagCache(client redis.Cmdable) *FeatureFlagCache {
	return &FeatureFlagCache{client: client}
}

func cacheKey(key string) string {
	return KeyPrefix + key
}

// Get devuelve found=false cuando la clave no existe o expiró.
func (c *FeatureFlagCache) Get(ctx context.Context, key string) (bool, bool, error) {
	v, err := c.client.Get(ctx, cacheKey(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, false, nil
		}
		return false, false, fmt.Errorf("redis get %s: %w", cacheKey(key), err)
	}
	switch v {
	case "1":
		return true, true, nil
	case "0":
		return false, true, nil
	default:
		// Valor corrupto: se trata como miss para que se relea del almacén.
		return false, false, nil
	}
}

// Set guarda el estado con TTL.
func (c *FeatureFlagCache) Set(ctx context.Context, key string, enabled bool, ttl time.Duration) error {
	v := "0"
	if enabled {
		v = "1"
	}
	if err := c.client.Set(ctx, cacheKey(key), v, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", cacheKey(key), err)
	}
	return nil
}

// Delete invalida la entrada.
func (c *FeatureFlagCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, cacheKey(key)).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", cacheKey(key), err)
	}
	return nil
}
