package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/horizontrails/agency-backoffice/internal/models"
)

const (
	generationKey = "packages:gen"
	listKeyPrefix = "packages:list:"
)

// NewRedisClient connects to the Redis instance at url and verifies it with a ping
func NewRedisClient(ctx context.Context, url string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	opts.DialTimeout = 5 * time.Second

	rdb := goredis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

// RedisPackageCache stores listing pages as JSON. Invalidation bumps a
// generation counter that is part of every key, so stale pages simply expire.
type RedisPackageCache struct {
	rdb    *goredis.Client
	ttl    time.Duration
	logger *logrus.Logger
}

// NewRedisPackageCache creates a new Redis backed package cache
func NewRedisPackageCache(rdb *goredis.Client, ttl time.Duration, logger *logrus.Logger) *RedisPackageCache {
	return &RedisPackageCache{rdb: rdb, ttl: ttl, logger: logger}
}

func (c *RedisPackageCache) listKey(ctx context.Context, key string) (string, error) {
	gen, err := c.rdb.Get(ctx, generationKey).Result()
	if errors.Is(err, goredis.Nil) {
		gen = "0"
	} else if err != nil {
		return "", err
	}
	return listKeyPrefix + gen + ":" + key, nil
}

// GetList returns the cached page for key
func (c *RedisPackageCache) GetList(ctx context.Context, key string) (*models.Page[models.Package], string, bool) {
	slot, err := c.listKey(ctx, key)
	if err != nil {
		c.logger.WithError(err).Warn("Package cache unavailable")
		return nil, "", false
	}

	raw, err := c.rdb.Get(ctx, slot).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, slot, false
	}
	if err != nil {
		c.logger.WithError(err).Warn("Package cache read failed")
		return nil, "", false
	}

	var page models.Page[models.Package]
	if err := json.Unmarshal(raw, &page); err != nil {
		c.logger.WithError(err).WithField("key", slot).Warn("Discarding corrupt package cache entry")
		return nil, slot, false
	}
	return &page, slot, true
}

// SetList stores page in the slot returned by GetList
func (c *RedisPackageCache) SetList(ctx context.Context, slot string, page *models.Page[models.Package]) {
	if slot == "" {
		return
	}

	raw, err := json.Marshal(page)
	if err != nil {
		c.logger.WithError(err).Error("Failed to encode package page")
		return
	}

	if err := c.rdb.Set(ctx, slot, raw, c.ttl).Err(); err != nil {
		c.logger.WithError(err).Warn("Package cache write failed")
	}
}

// Invalidate drops every cached listing
func (c *RedisPackageCache) Invalidate(ctx context.Context) {
	if err := c.rdb.Incr(ctx, generationKey).Err(); err != nil {
		c.logger.WithError(err).Error("Package cache invalidation failed")
	}
}

// Ping checks the Redis connection
func (c *RedisPackageCache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// Close closes the Redis client
func (c *RedisPackageCache) Close() error {
	return c.rdb.Close()
}
