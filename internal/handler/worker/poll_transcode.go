package worker

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/edustream/videos-ms-go/internal/port"
	"github.com/edustream/videos-ms-go/internal/task"
	msuuid "github.com/edustream/videos-ms-go/internal/uuid"
)

// PollTranscodeHandler handles one transcode status check. The attempt
// counter comes from the payload; re-arming is the usecase's business.
func PollTranscodeHandler(ctx context.Context, p task.PollTranscodePayload, svc port.TranscodePoller) error {
	id, err := uuid.Parse(p.VideoID)
	if err != nil {
		log.Printf("❌  Invalid video ID %q: %v", p.VideoID, err)
		return err
	}

	in := port.PollTranscodeInput{ID: msuuid.UUID(id), Attempt: p.Attempt}
	if err := svc.PollTranscode(ctx, in); err != nil {
		log.Printf("❌  Failed to poll transcode for video #%s (attempt %d): %v", id, p.Attempt, err)
		return err
	}

	log.Printf("✅  Polled transcode for video #%s (attempt %d)", id, p.Attempt)
	return nil
}
