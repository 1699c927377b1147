package port

import (
	"context"
	"time"

	"github.com/edustream/videos-ms-go/internal/uuid"
)

// TaskDispatcher enqueues asynchronous pipeline tasks. Delayed enqueues are
// the only suspension mechanism in the system: a poller re-arms itself by
// re-submitting its own task with a future execution time, never by
// sleeping.
type TaskDispatcher interface {
	EnqueueSubmitTranscode(ctx context.Context, id uuid.UUID) error
	EnqueuePollTranscode(ctx context.Context, id uuid.UUID, attempt int, delay time.Duration) error
	EnqueueExtractPoster(ctx context.Context, id uuid.UUID, delay time.Duration) error
	EnqueueInitiatePurge(ctx context.Context, id uuid.UUID) error
	EnqueueTrackPurge(ctx context.Context, id uuid.UUID, attempt int, delay time.Duration) error
}
