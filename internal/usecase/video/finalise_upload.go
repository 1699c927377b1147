package video

import (
	"context"
	"errors"

	"github.com/edustream/videos-ms-go/internal/model"
	"github.com/edustream/videos-ms-go/internal/port"
	"github.com/edustream/videos-ms-go/internal/uuid"
)

type uploadFinaliserSrv struct {
	repo       port.VideoRepository
	dispatcher port.TaskDispatcher
}

// compile-time check: *uploadFinaliserSrv must satisfy port.UploadFinaliser
var _ port.UploadFinaliser = (*uploadFinaliserSrv)(nil)

func NewUploadFinaliser(repo port.VideoRepository, dispatcher port.TaskDispatcher) port.UploadFinaliser {
	return &uploadFinaliserSrv{repo: repo, dispatcher: dispatcher}
}

// FinaliseUpload marks the upload as complete and hands the record to the
// transcode pipeline. Calling it twice is a no-op.
func (s *uploadFinaliserSrv) FinaliseUpload(ctx context.Context, id uuid.UUID) error {
	video, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if video.Status != model.VideoStatusUploadInProgress {
		if video.Status == model.VideoStatusUploadComplete {
			return nil
		}
		return errors.New("video status should be 'upload_in_progress' to be finalised")
	}

	video.Status = model.VideoStatusUploadComplete
	if err := s.repo.Update(ctx, video); err != nil {
		return err
	}

	return s.dispatcher.EnqueueSubmitTranscode(ctx, video.ID)
}
