package mock

import (
	"context"

	"github.com/edustream/videos-ms-go/internal/port"
)

// HTTPRenderer implements port.HTTPRenderer for tests.
type HTTPRenderer struct {
	// stored values
	VideoOut []byte

	// etag values
	EtagVideo string

	// captured inputs
	GotVideoUID string

	// errors
	GetVideoErr error

	// call flags
	GetVideoCalled bool
}

func (m *HTTPRenderer) RenderGetVideo(ctx context.Context, getter port.VideoGetter, uid string) ([]byte, string, error) {
	m.GetVideoCalled = true
	m.GotVideoUID = uid
	return m.VideoOut, m.EtagVideo, m.GetVideoErr
}
