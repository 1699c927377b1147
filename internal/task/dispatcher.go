package task

import (
	"context"
	"time"

	"github.com/edustream/videos-ms-go/internal/port"
	"github.com/edustream/videos-ms-go/internal/uuid"
	"github.com/hibiken/asynq"
)

// Dispatcher enqueues pipeline tasks on the durable queue. Delayed enqueues
// use ProcessIn: the worker slot is released immediately and the task
// becomes eligible again after the delay, which is how the pollers suspend
// without holding a thread.
type Dispatcher struct {
	client *asynq.Client
}

// compile-time check
var _ port.TaskDispatcher = (*Dispatcher)(nil)

func NewDispatcher(addr, password string) *Dispatcher {
	c := asynq.NewClient(asynq.RedisClientOpt{Addr: addr, Password: password})
	return &Dispatcher{client: c}
}

func (d *Dispatcher) EnqueueSubmitTranscode(ctx context.Context, id uuid.UUID) error {
	t, err := NewSubmitTranscodeTask(id.String())
	if err != nil {
		return err
	}
	// the submitter itself is single-try; the job either lands or the
	// record goes to error
	_, err = d.client.EnqueueContext(ctx, t, asynq.MaxRetry(0))
	return err
}

func (d *Dispatcher) EnqueuePollTranscode(ctx context.Context, id uuid.UUID, attempt int, delay time.Duration) error {
	t, err := NewPollTranscodeTask(id.String(), attempt)
	if err != nil {
		return err
	}
	_, err = d.client.EnqueueContext(ctx, t, asynq.ProcessIn(delay), asynq.MaxRetry(0))
	return err
}

func (d *Dispatcher) EnqueueExtractPoster(ctx context.Context, id uuid.UUID, delay time.Duration) error {
	t, err := NewExtractPosterTask(id.String())
	if err != nil {
		return err
	}
	opts := []asynq.Option{asynq.MaxRetry(0)}
	if delay > 0 {
		opts = append(opts, asynq.ProcessIn(delay))
	}
	_, err = d.client.EnqueueContext(ctx, t, opts...)
	return err
}

func (d *Dispatcher) EnqueueInitiatePurge(ctx context.Context, id uuid.UUID) error {
	t, err := NewInitiatePurgeTask(id.String())
	if err != nil {
		return err
	}
	_, err = d.client.EnqueueContext(ctx, t, asynq.MaxRetry(0))
	return err
}

func (d *Dispatcher) EnqueueTrackPurge(ctx context.Context, id uuid.UUID, attempt int, delay time.Duration) error {
	t, err := NewTrackPurgeTask(id.String(), attempt)
	if err != nil {
		return err
	}
	_, err = d.client.EnqueueContext(ctx, t, asynq.ProcessIn(delay), asynq.MaxRetry(0))
	return err
}
