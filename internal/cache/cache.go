package cache

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/edustream/videos-ms-go/internal/port"
	"github.com/redis/go-redis/v9"
)

type Cache struct {
	client *redis.Client
}

// compile-time check: *Cache must satisfy port.Cache
var _ port.Cache = (*Cache)(nil)

func NewCache(addr, password string) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	return &Cache{client: rdb}
}

func (c *Cache) GetVideoDetails(ctx context.Context, uid string) ([]byte, error) {
	val, err := c.client.Get(ctx, getCacheKey(uid, false)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // cache miss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}
	return val, nil
}

func (c *Cache) GetEtagVideoDetails(ctx context.Context, uid string) (string, error) {
	val, err := c.client.Get(ctx, getCacheKey(uid, true)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil // cache miss
	}
	if err != nil {
		return "", fmt.Errorf("redis get failed: %w", err)
	}
	return val, nil
}

func (c *Cache) SetVideoDetails(ctx context.Context, uid string, data []byte, validUntil time.Time) {
	log.Printf("creating entry in cache for video #%s, valid until %s...", uid, validUntil.Format(time.RFC1123))

	if err := c.client.Set(ctx, getCacheKey(uid, false), data, time.Until(validUntil)).Err(); err != nil {
		log.Printf("WARN: redis set failed for video #%s: %v", uid, err)
	}
}

func (c *Cache) SetEtagVideoDetails(ctx context.Context, uid string, etag string, validUntil time.Time) {
	if err := c.client.Set(ctx, getCacheKey(uid, true), etag, time.Until(validUntil)).Err(); err != nil {
		log.Printf("WARN: redis set failed for video etag #%s: %v", uid, err)
	}
}

func (c *Cache) DeleteVideoDetails(ctx context.Context, uid string) error {
	log.Printf("deleting entry in cache for video #%s...", uid)

	if err := c.client.Del(ctx, getCacheKey(uid, false)).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}

func (c *Cache) DeleteEtagVideoDetails(ctx context.Context, uid string) error {
	if err := c.client.Del(ctx, getCacheKey(uid, true)).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}

func getCacheKey(uid string, etag bool) string {
	if etag {
		return "etag:video:" + uid
	}
	return "video:" + uid
}
