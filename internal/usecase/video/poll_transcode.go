package video

import (
	"context"
	"fmt"
	"log"

	"github.com/edustream/videos-ms-go/internal/model"
	"github.com/edustream/videos-ms-go/internal/port"
)

type transcodePollerSrv struct {
	repo       port.VideoRepository
	transcoder port.Transcoder
	dispatcher port.TaskDispatcher
}

// compile-time check: *transcodePollerSrv must satisfy port.TranscodePoller
var _ port.TranscodePoller = (*transcodePollerSrv)(nil)

func NewTranscodePoller(repo port.VideoRepository, transcoder port.Transcoder, dispatcher port.TaskDispatcher) port.TranscodePoller {
	return &transcodePollerSrv{repo: repo, transcoder: transcoder, dispatcher: dispatcher}
}

// PollTranscode performs exactly one status check of the transcoding job.
// A job that is still running re-arms the poll through a delayed enqueue;
// no goroutine ever waits out the interval in memory.
func (s *transcodePollerSrv) PollTranscode(ctx context.Context, in port.PollTranscodeInput) error {
	video, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		return err
	}
	if video.Status != model.VideoStatusTranscodeInProgress {
		// stale poll, the record already moved on
		return nil
	}

	names := video.ArtifactNames
	status, err := s.transcoder.GetJobStatus(ctx, names.InputJob)
	if err != nil {
		pollErr := fmt.Errorf("check transcoding job %q: %w", names.InputJob, err)
		s.markAsFailed(ctx, video, pollErr.Error())
		return pollErr
	}

	switch status.State {
	case port.JobStateError:
		s.markAsFailed(ctx, video, fmt.Sprintf("transcoding job %q ended in error", names.InputJob))
		return nil

	case port.JobStateFinished:
		return s.finish(ctx, video)

	default:
		if in.Attempt >= MaxTranscodePollAttempts {
			log.Printf("transcoding job %q still %q after %d polls, giving up", names.InputJob, status.State, in.Attempt)
			reason := fmt.Sprintf("transcoding job %q still %q after %d polls", names.InputJob, status.State, in.Attempt)
			video.Status = model.VideoStatusTranscodeTimeout
			video.FailureMessage = &reason
			return s.repo.Update(ctx, video)
		}
		return s.dispatcher.EnqueuePollTranscode(ctx, video.ID, in.Attempt+1, TranscodePollInterval)
	}
}

// finish publishes the streaming output and starts poster extraction.
func (s *transcodePollerSrv) finish(ctx context.Context, video *model.Video) error {
	names := video.ArtifactNames

	if err := s.transcoder.CreateStreamingLocator(ctx, names.StreamingLocator, names.OutputAsset); err != nil {
		finishErr := fmt.Errorf("create streaming locator %q: %w", names.StreamingLocator, err)
		s.markAsFailed(ctx, video, finishErr.Error())
		return finishErr
	}

	paths, err := s.transcoder.ListStreamingPaths(ctx, names.StreamingLocator)
	if err != nil {
		finishErr := fmt.Errorf("list streaming paths for locator %q: %w", names.StreamingLocator, err)
		s.markAsFailed(ctx, video, finishErr.Error())
		return finishErr
	}

	var streamingPath string
	for _, p := range paths {
		if p.Protocol == port.StreamingProtocolHls && len(p.Paths) > 0 {
			streamingPath = p.Paths[0]
			break
		}
	}
	if streamingPath == "" {
		s.markAsFailed(ctx, video, fmt.Sprintf("no %s streaming path returned for locator %q", port.StreamingProtocolHls, names.StreamingLocator))
		return nil
	}

	video.StreamingURL = &streamingPath
	video.Status = model.VideoStatusReady
	if err := s.repo.Update(ctx, video); err != nil {
		return err
	}

	return s.dispatcher.EnqueueExtractPoster(ctx, video.ID, 0)
}

func (s *transcodePollerSrv) markAsFailed(ctx context.Context, video *model.Video, reason string) {
	video.Status = model.VideoStatusError
	video.FailureMessage = &reason

	if err := s.repo.Update(ctx, video); err != nil {
		log.Printf("markAsFailed failed for video #%s: %v", video.ID, err)
	}
}
