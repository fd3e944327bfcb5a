package cache

import (
	"context"
	"crypto/md5"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shubhankar1313/glf-banner-generator/internal/config"
	"github.com/shubhankar1313/glf-banner-generator/internal/models"
)

// Cache stores finished composites in Redis. Composition is deterministic,
// so a cached PNG is byte-identical to a recomputed one. A nil *Cache is
// valid and means caching is disabled.
type Cache struct {
	client        *redis.Client
	cacheDuration time.Duration
}

// New returns nil when no Redis address is configured.
func New(cfg config.RedisConfig) *Cache {
	if cfg.Addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	return &Cache{
		client:        client,
		cacheDuration: cfg.CacheDuration,
	}
}

func (c *Cache) Get(ctx context.Context, cacheKey string) ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	data, err := c.client.Get(ctx, cacheKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		return nil, fmt.Errorf("cache get error: %w", err)
	}
	return data, nil
}

func (c *Cache) Set(ctx context.Context, cacheKey string, data []byte) error {
	if c == nil {
		return nil
	}
	return c.client.Set(ctx, cacheKey, data, c.cacheDuration).Err()
}

// Key derives the cache key from everything that affects the output: the
// photo bytes, the text fields, the QR payload and the template fingerprint.
func (c *Cache) Key(photo []byte, req *models.CardRequest, templateFingerprint string) string {
	hash := md5.New()
	hash.Write(photo)
	fmt.Fprintf(hash, "|name_%s|desg_%s|qr_%s|tpl_%s",
		req.Name, req.Designation, req.QRData, templateFingerprint)
	return fmt.Sprintf("card_cache:%x", hash.Sum(nil))
}

// HealthCheck reports the Redis connection state for the health endpoint.
func (c *Cache) HealthCheck(ctx context.Context) string {
	if c == nil {
		return "not configured"
	}
	if err := c.client.Ping(ctx).Err(); err != nil {
		return "unhealthy: " + err.Error()
	}
	return "healthy"
}

func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
