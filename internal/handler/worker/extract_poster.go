package worker

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/edustream/videos-ms-go/internal/port"
	"github.com/edustream/videos-ms-go/internal/task"
	msuuid "github.com/edustream/videos-ms-go/internal/uuid"
)

// ExtractPosterHandler handles a poster-extraction task.
func ExtractPosterHandler(ctx context.Context, p task.ExtractPosterPayload, svc port.PosterExtractor) error {
	id, err := uuid.Parse(p.VideoID)
	if err != nil {
		log.Printf("❌  Invalid video ID %q: %v", p.VideoID, err)
		return err
	}

	if err := svc.ExtractPoster(ctx, msuuid.UUID(id)); err != nil {
		log.Printf("❌  Failed to extract poster for video #%s: %v", id, err)
		return err
	}

	log.Printf("✅  Successfully ran poster extraction for video #%s", id)
	return nil
}
