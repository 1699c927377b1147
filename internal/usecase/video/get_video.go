package video

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/edustream/videos-ms-go/internal/model"
	"github.com/edustream/videos-ms-go/internal/port"
)

type videoGetterSrv struct {
	repo         port.VideoRepository
	signer       port.SasSigner
	blobBaseURL  string
	mediaBaseURL string
}

// compile-time check: *videoGetterSrv must satisfy port.VideoGetter
var _ port.VideoGetter = (*videoGetterSrv)(nil)

func NewVideoGetter(repo port.VideoRepository, signer port.SasSigner, blobBaseURL, mediaBaseURL string) port.VideoGetter {
	return &videoGetterSrv{
		repo:         repo,
		signer:       signer,
		blobBaseURL:  strings.TrimRight(blobBaseURL, "/"),
		mediaBaseURL: strings.TrimRight(mediaBaseURL, "/"),
	}
}

// GetVideo returns the public details of a video looked up by its opaque
// uid. Source and poster links are SAS-signed read-only URLs whose expiry
// also caps how long the output may be cached.
func (s *videoGetterSrv) GetVideo(ctx context.Context, uid string) (*port.GetVideoOutput, error) {
	video, err := s.repo.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	out := &port.GetVideoOutput{
		ValidUntil: now.Add(DownloadURLTTL),
		UID:        video.UID,
		Title:      video.Title,
		Status:     video.Status,
	}

	if video.StreamingURL != nil {
		out.StreamingURL = s.mediaBaseURL + ensureLeadingSlash(*video.StreamingURL)
	}

	names := video.ArtifactNames
	srcSAS, err := s.signer.BlobSAS(names.InputContainer, names.InputFile, ReadPermissions, now, now.Add(DownloadURLTTL))
	if err != nil {
		return nil, fmt.Errorf("sign source url: %w", err)
	}
	out.SourceURL = fmt.Sprintf("%s/%s/%s?%s", s.blobBaseURL, names.InputContainer, names.InputFile, srcSAS)

	if video.PosterPath != nil {
		posterSAS, err := s.signer.BlobSAS(names.PosterContainer, names.PosterImage, ReadPermissions, now, now.Add(DownloadURLTTL))
		if err != nil {
			return nil, fmt.Errorf("sign poster url: %w", err)
		}
		out.PosterURL = fmt.Sprintf("%s/%s/%s?%s", s.blobBaseURL, names.PosterContainer, names.PosterImage, posterSAS)
	}

	if video.Status == model.VideoStatusError && video.FailureMessage != nil {
		// failure details stay internal, only the status is public
		out.StreamingURL = ""
	}

	return out, nil
}

func ensureLeadingSlash(p string) string {
	if strings.HasPrefix(p, "/") {
		return p
	}
	return "/" + p
}
