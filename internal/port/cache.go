package port

import (
	"context"
	"time"
)

// Cache provides caching capabilities for video detail retrieval.
type Cache interface {
	GetVideoDetails(ctx context.Context, uid string) ([]byte, error)
	GetEtagVideoDetails(ctx context.Context, uid string) (string, error)
	SetVideoDetails(ctx context.Context, uid string, data []byte, validUntil time.Time)
	SetEtagVideoDetails(ctx context.Context, uid string, etag string, validUntil time.Time)
	DeleteVideoDetails(ctx context.Context, uid string) error
	DeleteEtagVideoDetails(ctx context.Context, uid string) error
}

// HTTPRenderer mediates between HTTP handlers and the video getter use case.
// It provides caching capabilities and returns both the JSON representation
// of the result as well as an ETag value derived from it.
type HTTPRenderer interface {
	RenderGetVideo(ctx context.Context, getter VideoGetter, uid string) ([]byte, string, error)
}
