package worker

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/edustream/videos-ms-go/internal/port"
	"github.com/edustream/videos-ms-go/internal/task"
	msuuid "github.com/edustream/videos-ms-go/internal/uuid"
)

// TrackPurgeHandler handles one purge status check.
func TrackPurgeHandler(ctx context.Context, p task.TrackPurgePayload, svc port.PurgeTracker) error {
	id, err := uuid.Parse(p.PurgeID)
	if err != nil {
		log.Printf("❌  Invalid purge ID %q: %v", p.PurgeID, err)
		return err
	}

	in := port.TrackPurgeInput{ID: msuuid.UUID(id), Attempt: p.Attempt}
	if err := svc.TrackPurge(ctx, in); err != nil {
		log.Printf("❌  Failed to track purge #%s (attempt %d): %v", id, p.Attempt, err)
		return err
	}

	log.Printf("✅  Tracked purge #%s (attempt %d)", id, p.Attempt)
	return nil
}
