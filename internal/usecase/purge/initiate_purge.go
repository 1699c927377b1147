package purge

import (
	"context"
	"fmt"
	"log"

	"github.com/edustream/videos-ms-go/internal/model"
	"github.com/edustream/videos-ms-go/internal/port"
	"github.com/edustream/videos-ms-go/internal/uuid"
)

type purgeInitiatorSrv struct {
	repo       port.PurgeRepository
	purger     port.CdnPurger
	dispatcher port.TaskDispatcher
}

// compile-time check: *purgeInitiatorSrv must satisfy port.PurgeInitiator
var _ port.PurgeInitiator = (*purgeInitiatorSrv)(nil)

func NewPurgeInitiator(repo port.PurgeRepository, purger port.CdnPurger, dispatcher port.TaskDispatcher) port.PurgeInitiator {
	return &purgeInitiatorSrv{repo: repo, purger: purger, dispatcher: dispatcher}
}

// InitiatePurge submits a pending purge to the provider. An accepted
// submission stores the operation handle and arms the first status check;
// a rejected one is failed immediately, with no retry.
func (s *purgeInitiatorSrv) InitiatePurge(ctx context.Context, id uuid.UUID) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p.Status != model.PurgeStatusPending {
		// already submitted, or already settled
		return nil
	}

	resp, err := s.purger.Purge(ctx, p.Paths)
	if err != nil {
		submitErr := fmt.Errorf("submit purge #%s: %w", p.ID, err)
		s.markAsFailed(ctx, p, submitErr.Error())
		return submitErr
	}

	if !resp.Accepted() {
		s.markAsFailed(ctx, p, fmt.Sprintf("purge rejected with status %d", resp.StatusCode))
		return nil
	}

	p.Status = model.PurgeStatusInProgress
	if resp.OperationURL != "" {
		p.OperationURL = &resp.OperationURL
	}
	if resp.RequestID != "" {
		p.RequestID = &resp.RequestID
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return err
	}

	return s.dispatcher.EnqueueTrackPurge(ctx, p.ID, 1, TrackInitialDelay)
}

func (s *purgeInitiatorSrv) markAsFailed(ctx context.Context, p *model.CdnPurge, reason string) {
	p.Status = model.PurgeStatusFailed
	p.ErrorMessage = &reason

	if err := s.repo.Update(ctx, p); err != nil {
		log.Printf("markAsFailed failed for purge #%s: %v", p.ID, err)
	}
}
