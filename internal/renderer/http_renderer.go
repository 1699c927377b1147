package renderer

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/crc32"

	"github.com/edustream/videos-ms-go/internal/port"
)

type httpRenderer struct {
	cache port.Cache
}

// compile-time check: *httpRenderer must satisfy port.HTTPRenderer
var _ port.HTTPRenderer = (*httpRenderer)(nil)

// NewHTTPRenderer creates a new HTTPRenderer implementation.
func NewHTTPRenderer(cache port.Cache) port.HTTPRenderer {
	return &httpRenderer{cache: cache}
}

// RenderGetVideo fetches video details either from cache or from the wrapped
// use case. It returns the JSON encoded output and a quoted ETag string.
func (r *httpRenderer) RenderGetVideo(ctx context.Context, getter port.VideoGetter, uid string) ([]byte, string, error) {
	raw, err := r.cache.GetVideoDetails(ctx, uid)
	etag, errEtag := r.cache.GetEtagVideoDetails(ctx, uid)
	if err == nil && errEtag == nil && raw != nil && etag != "" {
		return raw, etag, nil
	}

	out, err := getter.GetVideo(ctx, uid)
	if err != nil {
		return nil, "", err
	}

	raw, err = json.Marshal(out)
	if err != nil {
		return nil, "", fmt.Errorf("json marshal: %w", err)
	}

	etag = fmt.Sprintf("\"%08x\"", crc32.ChecksumIEEE(raw))
	r.cache.SetVideoDetails(ctx, uid, raw, out.ValidUntil)
	r.cache.SetEtagVideoDetails(ctx, uid, etag, out.ValidUntil)

	return raw, etag, nil
}
