package worker

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/edustream/videos-ms-go/internal/port"
	"github.com/edustream/videos-ms-go/internal/task"
	msuuid "github.com/edustream/videos-ms-go/internal/uuid"
)

// SubmitTranscodeHandler handles a transcode-submit task.
// It converts the incoming task payload to the input expected by the
// TranscodeSubmitter service and delegates the call.
func SubmitTranscodeHandler(ctx context.Context, p task.SubmitTranscodePayload, svc port.TranscodeSubmitter) error {
	id, err := uuid.Parse(p.VideoID)
	if err != nil {
		log.Printf("❌  Invalid video ID %q: %v", p.VideoID, err)
		return err
	}

	if err := svc.SubmitTranscode(ctx, msuuid.UUID(id)); err != nil {
		log.Printf("❌  Failed to submit transcode for video #%s: %v", id, err)
		return err
	}

	log.Printf("✅  Successfully submitted transcode for video #%s", id)
	return nil
}
