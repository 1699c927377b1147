package mock

import (
	"context"
	"time"

	"github.com/edustream/videos-ms-go/internal/uuid"
)

// MockDispatcher implements task dispatching for tests. Delayed enqueues
// record both the attempt counter and the requested delay.
type MockDispatcher struct {
	SubmitTranscodeCalled bool
	SubmitTranscodeIDs    []uuid.UUID
	SubmitTranscodeErr    error

	PollTranscodeCalled   bool
	PollTranscodeIDs      []uuid.UUID
	PollTranscodeAttempts []int
	PollTranscodeDelays   []time.Duration
	PollTranscodeErr      error

	ExtractPosterCalled bool
	ExtractPosterIDs    []uuid.UUID
	ExtractPosterDelays []time.Duration
	ExtractPosterErr    error

	InitiatePurgeCalled bool
	InitiatePurgeIDs    []uuid.UUID
	InitiatePurgeErr    error

	TrackPurgeCalled   bool
	TrackPurgeIDs      []uuid.UUID
	TrackPurgeAttempts []int
	TrackPurgeDelays   []time.Duration
	TrackPurgeErr      error
}

func (m *MockDispatcher) EnqueueSubmitTranscode(ctx context.Context, id uuid.UUID) error {
	m.SubmitTranscodeCalled = true
	m.SubmitTranscodeIDs = append(m.SubmitTranscodeIDs, id)
	return m.SubmitTranscodeErr
}

func (m *MockDispatcher) EnqueuePollTranscode(ctx context.Context, id uuid.UUID, attempt int, delay time.Duration) error {
	m.PollTranscodeCalled = true
	m.PollTranscodeIDs = append(m.PollTranscodeIDs, id)
	m.PollTranscodeAttempts = append(m.PollTranscodeAttempts, attempt)
	m.PollTranscodeDelays = append(m.PollTranscodeDelays, delay)
	return m.PollTranscodeErr
}

func (m *MockDispatcher) EnqueueExtractPoster(ctx context.Context, id uuid.UUID, delay time.Duration) error {
	m.ExtractPosterCalled = true
	m.ExtractPosterIDs = append(m.ExtractPosterIDs, id)
	m.ExtractPosterDelays = append(m.ExtractPosterDelays, delay)
	return m.ExtractPosterErr
}

func (m *MockDispatcher) EnqueueInitiatePurge(ctx context.Context, id uuid.UUID) error {
	m.InitiatePurgeCalled = true
	m.InitiatePurgeIDs = append(m.InitiatePurgeIDs, id)
	return m.InitiatePurgeErr
}

func (m *MockDispatcher) EnqueueTrackPurge(ctx context.Context, id uuid.UUID, attempt int, delay time.Duration) error {
	m.TrackPurgeCalled = true
	m.TrackPurgeIDs = append(m.TrackPurgeIDs, id)
	m.TrackPurgeAttempts = append(m.TrackPurgeAttempts, attempt)
	m.TrackPurgeDelays = append(m.TrackPurgeDelays, delay)
	return m.TrackPurgeErr
}
