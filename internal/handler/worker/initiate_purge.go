package worker

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/edustream/videos-ms-go/internal/port"
	"github.com/edustream/videos-ms-go/internal/task"
	msuuid "github.com/edustream/videos-ms-go/internal/uuid"
)

// InitiatePurgeHandler handles a purge-submission task.
func InitiatePurgeHandler(ctx context.Context, p task.InitiatePurgePayload, svc port.PurgeInitiator) error {
	id, err := uuid.Parse(p.PurgeID)
	if err != nil {
		log.Printf("❌  Invalid purge ID %q: %v", p.PurgeID, err)
		return err
	}

	if err := svc.InitiatePurge(ctx, msuuid.UUID(id)); err != nil {
		log.Printf("❌  Failed to initiate purge #%s: %v", id, err)
		return err
	}

	log.Printf("✅  Successfully initiated purge #%s", id)
	return nil
}
