package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/edustream/videos-ms-go/internal/port"
	guuid "github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the key only while it still holds our token. A
// holder whose TTL lapsed must not delete the lock the next worker owns.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// RedisLock implements a best-effort advisory lock on top of Redis SET NX.
// The TTL guarantees a crashed holder cannot wedge the key forever; each
// acquisition stores a random token so a stale holder cannot release a
// lock it no longer owns.
type RedisLock struct {
	client *redis.Client

	mu     sync.Mutex
	tokens map[string]string
}

// compile-time check: *RedisLock must satisfy port.AdvisoryLock
var _ port.AdvisoryLock = (*RedisLock)(nil)

func NewRedisLock(addr, password string) *RedisLock {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	return &RedisLock{client: rdb, tokens: make(map[string]string)}
}

func (l *RedisLock) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	token := guuid.NewString()
	ok, err := l.client.SetNX(ctx, lockKey(key), token, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis setnx failed: %w", err)
	}
	if ok {
		l.mu.Lock()
		l.tokens[key] = token
		l.mu.Unlock()
	}
	return ok, nil
}

// Release is a no-op when this instance never acquired the key, and when
// the key expired and was re-acquired by someone else in the meantime.
func (l *RedisLock) Release(ctx context.Context, key string) error {
	l.mu.Lock()
	token, held := l.tokens[key]
	delete(l.tokens, key)
	l.mu.Unlock()
	if !held {
		return nil
	}

	if err := releaseScript.Run(ctx, l.client, []string{lockKey(key)}, token).Err(); err != nil {
		return fmt.Errorf("redis release failed: %w", err)
	}
	return nil
}

func lockKey(key string) string {
	return "lock:" + key
}
