package video

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/edustream/videos-ms-go/internal/model"
	"github.com/edustream/videos-ms-go/internal/port"
	"github.com/edustream/videos-ms-go/internal/uuid"
)

type transcodeSubmitterSrv struct {
	repo       port.VideoRepository
	transcoder port.Transcoder
	dispatcher port.TaskDispatcher
}

// compile-time check: *transcodeSubmitterSrv must satisfy port.TranscodeSubmitter
var _ port.TranscodeSubmitter = (*transcodeSubmitterSrv)(nil)

func NewTranscodeSubmitter(repo port.VideoRepository, transcoder port.Transcoder, dispatcher port.TaskDispatcher) port.TranscodeSubmitter {
	return &transcodeSubmitterSrv{repo: repo, transcoder: transcoder, dispatcher: dispatcher}
}

// SubmitTranscode creates the output asset and the transcoding job at the
// external service, then arms the first status poll. The record moves to
// transcode_in_progress before the submission so a crash mid-submit is
// visible.
func (s *transcodeSubmitterSrv) SubmitTranscode(ctx context.Context, id uuid.UUID) error {
	video, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if video.Status == model.VideoStatusTranscodeInProgress {
		// already submitted, let the poller do its work
		return nil
	}
	if video.Status != model.VideoStatusUploadComplete {
		return errors.New("video status should be 'upload_complete' to submit a transcode")
	}

	video.Status = model.VideoStatusTranscodeInProgress
	if err := s.repo.Update(ctx, video); err != nil {
		return err
	}

	names := video.ArtifactNames
	if err := s.transcoder.CreateAsset(ctx, names.OutputAsset, names.OutputContainer); err != nil {
		submitErr := fmt.Errorf("create output asset %q: %w", names.OutputAsset, err)
		s.markAsFailed(ctx, video, submitErr.Error())
		return submitErr
	}
	if err := s.transcoder.CreateJob(ctx, names.InputAsset, names.InputFile, names.OutputAsset, names.InputJob); err != nil {
		submitErr := fmt.Errorf("create transcoding job %q: %w", names.InputJob, err)
		s.markAsFailed(ctx, video, submitErr.Error())
		return submitErr
	}

	return s.dispatcher.EnqueuePollTranscode(ctx, video.ID, 1, TranscodePollInterval)
}

func (s *transcodeSubmitterSrv) markAsFailed(ctx context.Context, video *model.Video, reason string) {
	video.Status = model.VideoStatusError
	video.FailureMessage = &reason

	if err := s.repo.Update(ctx, video); err != nil {
		log.Printf("markAsFailed failed for video #%s: %v", video.ID, err)
	}
}
