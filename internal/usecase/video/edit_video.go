package video

import (
	"context"
	"errors"

	"github.com/edustream/videos-ms-go/internal/model"
	"github.com/edustream/videos-ms-go/internal/port"
)

type videoEditorSrv struct {
	repo       port.VideoRepository
	dispatcher port.TaskDispatcher
	cache      port.Cache
}

// compile-time check: *videoEditorSrv must satisfy port.VideoEditor
var _ port.VideoEditor = (*videoEditorSrv)(nil)

func NewVideoEditor(repo port.VideoRepository, dispatcher port.TaskDispatcher, cache port.Cache) port.VideoEditor {
	return &videoEditorSrv{repo: repo, dispatcher: dispatcher, cache: cache}
}

// EditVideo applies operator edits. Draft is only reachable from here, and
// Retry is the single escape hatch out of the terminal failure states: it
// rewinds the record to upload_complete and resubmits the transcode.
func (s *videoEditorSrv) EditVideo(ctx context.Context, in port.EditVideoInput) error {
	video, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		return err
	}

	if in.Title != nil {
		video.Title = *in.Title
	}
	if in.Description != nil {
		video.Description = in.Description
	}

	if in.Draft {
		if !video.IsPipelineTerminal() {
			return errors.New("a video still in the pipeline cannot be drafted")
		}
		video.Status = model.VideoStatusDraft
	}

	retrying := false
	if in.Retry {
		if video.Status != model.VideoStatusError && video.Status != model.VideoStatusTranscodeTimeout {
			return errors.New("only failed videos can be retried")
		}
		video.Status = model.VideoStatusUploadComplete
		video.FailureMessage = nil
		retrying = true
	}

	if err := s.repo.Update(ctx, video); err != nil {
		return err
	}

	// edits invalidate any cached rendering of the details
	if err := s.cache.DeleteVideoDetails(ctx, video.UID); err != nil {
		return err
	}
	if err := s.cache.DeleteEtagVideoDetails(ctx, video.UID); err != nil {
		return err
	}

	if retrying {
		return s.dispatcher.EnqueueSubmitTranscode(ctx, video.ID)
	}
	return nil
}
