package purge

import (
	"context"
	"log"
	"time"

	"github.com/edustream/videos-ms-go/internal/model"
	"github.com/edustream/videos-ms-go/internal/port"
)

type purgeTrackerSrv struct {
	repo       port.PurgeRepository
	purger     port.CdnPurger
	dispatcher port.TaskDispatcher
}

// compile-time check: *purgeTrackerSrv must satisfy port.PurgeTracker
var _ port.PurgeTracker = (*purgeTrackerSrv)(nil)

func NewPurgeTracker(repo port.PurgeRepository, purger port.CdnPurger, dispatcher port.TaskDispatcher) port.PurgeTracker {
	return &purgeTrackerSrv{repo: repo, purger: purger, dispatcher: dispatcher}
}

// TrackPurge performs one status check of an in-progress purge. Provider or
// transport hiccups are logged and treated like "still running"; the purge
// only settles on an explicit Succeeded or Failed answer. When the attempt
// bound runs out the record is left in_progress for an operator to look at.
func (s *purgeTrackerSrv) TrackPurge(ctx context.Context, in port.TrackPurgeInput) error {
	p, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		return err
	}
	if p.IsTerminal() {
		return nil
	}
	if p.OperationURL == nil {
		log.Printf("purge #%s has no operation handle, cannot track", p.ID)
		return nil
	}

	status, err := s.purger.GetOperationStatus(ctx, *p.OperationURL)
	if err != nil {
		log.Printf("failed to refresh purge #%s status: %v", p.ID, err)
		return s.reArm(ctx, p, in.Attempt)
	}

	switch status.Status {
	case port.OperationSucceeded:
		now := time.Now().UTC()
		p.Status = model.PurgeStatusSucceeded
		p.CompletedAt = &now
		return s.repo.Update(ctx, p)

	case port.OperationFailed:
		now := time.Now().UTC()
		p.Status = model.PurgeStatusFailed
		p.CompletedAt = &now
		if status.ErrorMessage != "" {
			p.ErrorMessage = &status.ErrorMessage
		}
		return s.repo.Update(ctx, p)

	default:
		return s.reArm(ctx, p, in.Attempt)
	}
}

func (s *purgeTrackerSrv) reArm(ctx context.Context, p *model.CdnPurge, attempt int) error {
	if attempt >= MaxTrackAttempts {
		log.Printf("purge #%s still in progress after %d checks, giving up tracking", p.ID, attempt)
		return nil
	}
	return s.dispatcher.EnqueueTrackPurge(ctx, p.ID, attempt+1, TrackInterval)
}
