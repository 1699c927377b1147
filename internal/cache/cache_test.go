package cache

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func makeTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	// spin up in-memory Redis
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis.Run: %v", err)
	}
	// point the real client at it
	rdb := redis.NewClient(&redis.Options{
		Addr:     mr.Addr(),
		Password: "",
		DB:       0,
	})
	return &Cache{client: rdb}, mr
}

func TestGetSetDeleteVideoDetails(t *testing.T) {
	c, mr := makeTestCache(t)
	ctx := context.Background()

	uid := "vid_abc123"
	data := []byte(`{"uid":"vid_abc123","status":"video_ready"}`)

	// 1) Cache miss
	got, err := c.GetVideoDetails(ctx, uid)
	if err != nil {
		t.Fatalf("GetVideoDetails miss: %v", err)
	}
	if got != nil {
		t.Errorf("GetVideoDetails miss: got %v; want nil", got)
	}

	// 2) Set + Get
	c.SetVideoDetails(ctx, uid, data, time.Now().Add(2*time.Minute))
	c.SetEtagVideoDetails(ctx, uid, `"deadbeef"`, time.Now().Add(2*time.Minute))
	// check TTL in Redis ≈ 2m
	if ttl := mr.TTL(getCacheKey(uid, false)); ttl < time.Minute || ttl > 2*time.Minute+time.Second {
		t.Errorf("redis TTL = %v; want ~2m", ttl)
	}
	if ttl := mr.TTL(getCacheKey(uid, true)); ttl < time.Minute || ttl > 2*time.Minute+time.Second {
		t.Errorf("etag TTL = %v; want ~2m", ttl)
	}
	got, err = c.GetVideoDetails(ctx, uid)
	if err != nil {
		t.Fatalf("GetVideoDetails hit: %v", err)
	}
	if string(got) != string(data) {
		t.Errorf("roundtrip mismatch: got %s; want %s", got, data)
	}
	etag, err := c.GetEtagVideoDetails(ctx, uid)
	if err != nil {
		t.Fatalf("GetEtagVideoDetails hit: %v", err)
	}
	if etag != `"deadbeef"` {
		t.Errorf("etag = %q; want %q", etag, `"deadbeef"`)
	}

	// 3) Delete + miss again
	if err := c.DeleteVideoDetails(ctx, uid); err != nil {
		t.Fatalf("DeleteVideoDetails: %v", err)
	}
	if err := c.DeleteEtagVideoDetails(ctx, uid); err != nil {
		t.Fatalf("DeleteEtagVideoDetails: %v", err)
	}
	if got, _ := c.GetVideoDetails(ctx, uid); got != nil {
		t.Errorf("after delete, GetVideoDetails = %v; want nil", got)
	}
	if etag, _ := c.GetEtagVideoDetails(ctx, uid); etag != "" {
		t.Errorf("after delete, GetEtagVideoDetails = %q; want empty", etag)
	}
}

func TestGetVideoDetails_RedisError(t *testing.T) {
	c, mr := makeTestCache(t)
	ctx := context.Background()

	// Simulate Redis unreachable
	mr.Close()

	got, err := c.GetVideoDetails(ctx, "vid_abc123")
	if got != nil {
		t.Errorf("Expected nil on Redis error, got %v", got)
	}
	if err == nil || !strings.Contains(err.Error(), "redis get failed") {
		t.Errorf("Expected redis get failed error, got %v", err)
	}
}

func TestDeleteVideoDetails_RedisError(t *testing.T) {
	c, mr := makeTestCache(t)
	ctx := context.Background()

	// Simulate Redis unreachable before Delete
	mr.Close()

	err := c.DeleteVideoDetails(ctx, "vid_abc123")
	if err == nil || !strings.Contains(err.Error(), "redis del failed") {
		t.Errorf("Expected redis del failed error, got %v", err)
	}
}

func TestGetCacheKey_Etag(t *testing.T) {
	if got := getCacheKey("vid_x", true); got != "etag:video:vid_x" {
		t.Errorf("getCacheKey(true) = %q; want %q", got, "etag:video:vid_x")
	}
	if got := getCacheKey("vid_x", false); got != "video:vid_x" {
		t.Errorf("getCacheKey() = %q; want %q", got, "video:vid_x")
	}
}
