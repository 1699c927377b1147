package task

import (
	"context"
	"time"

	"github.com/edustream/videos-ms-go/internal/port"
	"github.com/edustream/videos-ms-go/internal/uuid"
)

// NoopDispatcher drops every enqueue. Used when Redis is not configured.
type NoopDispatcher struct{}

var _ port.TaskDispatcher = (*NoopDispatcher)(nil)

func NewNoopDispatcher() *NoopDispatcher { return &NoopDispatcher{} }

func (d *NoopDispatcher) EnqueueSubmitTranscode(ctx context.Context, id uuid.UUID) error {
	return nil
}

func (d *NoopDispatcher) EnqueuePollTranscode(ctx context.Context, id uuid.UUID, attempt int, delay time.Duration) error {
	return nil
}

func (d *NoopDispatcher) EnqueueExtractPoster(ctx context.Context, id uuid.UUID, delay time.Duration) error {
	return nil
}

func (d *NoopDispatcher) EnqueueInitiatePurge(ctx context.Context, id uuid.UUID) error {
	return nil
}

func (d *NoopDispatcher) EnqueueTrackPurge(ctx context.Context, id uuid.UUID, attempt int, delay time.Duration) error {
	return nil
}
