package cache

import (
	"context"
	"time"

	"github.com/edustream/videos-ms-go/internal/port"
)

type NoopCache struct{}

// compile-time check: *NoopCache must satisfy port.Cache
var _ port.Cache = (*NoopCache)(nil)

func NewNoop() *NoopCache {
	return &NoopCache{}
}

func (n *NoopCache) GetVideoDetails(ctx context.Context, uid string) ([]byte, error) {
	return nil, nil // always cache miss
}

func (n *NoopCache) GetEtagVideoDetails(ctx context.Context, uid string) (string, error) {
	return "", nil
}

func (n *NoopCache) SetVideoDetails(ctx context.Context, uid string, data []byte, validUntil time.Time) {
}

func (n *NoopCache) SetEtagVideoDetails(ctx context.Context, uid string, etag string, validUntil time.Time) {
}

func (n *NoopCache) DeleteVideoDetails(ctx context.Context, uid string) error { return nil }

func (n *NoopCache) DeleteEtagVideoDetails(ctx context.Context, uid string) error {
	return nil
}
