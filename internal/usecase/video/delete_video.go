package video

import (
	"context"
	"errors"

	"github.com/edustream/videos-ms-go/internal/model"
	"github.com/edustream/videos-ms-go/internal/port"
	"github.com/edustream/videos-ms-go/internal/uuid"
)

type videoDeleterSrv struct {
	repo  port.VideoRepository
	cache port.Cache
}

// compile-time check: *videoDeleterSrv must satisfy port.VideoDeleter
var _ port.VideoDeleter = (*videoDeleterSrv)(nil)

func NewVideoDeleter(repo port.VideoRepository, cache port.Cache) port.VideoDeleter {
	return &videoDeleterSrv{repo: repo, cache: cache}
}

// DeleteVideo soft-deletes the record. External artifacts stay where they
// are; reclaiming storage is a separate operational concern. A record with
// a pipeline stage in flight cannot be deleted: a queued task would find
// the row gone and report a failure instead of finishing cleanly.
func (s *videoDeleterSrv) DeleteVideo(ctx context.Context, id uuid.UUID) error {
	video, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if video.Status != model.VideoStatusUploadInProgress && !video.IsPipelineTerminal() {
		return errors.New("video cannot be deleted while the transcode pipeline is processing it")
	}

	if err := s.repo.SoftDelete(ctx, video.ID); err != nil {
		return err
	}

	if err := s.cache.DeleteVideoDetails(ctx, video.UID); err != nil {
		return err
	}
	return s.cache.DeleteEtagVideoDetails(ctx, video.UID)
}
