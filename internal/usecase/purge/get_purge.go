package purge

import (
	"context"
	"log"
	"time"

	"github.com/edustream/videos-ms-go/internal/model"
	"github.com/edustream/videos-ms-go/internal/port"
	"github.com/edustream/videos-ms-go/internal/uuid"
)

type purgeGetterSrv struct {
	repo   port.PurgeRepository
	purger port.CdnPurger
}

// compile-time check: *purgeGetterSrv must satisfy port.PurgeGetter
var _ port.PurgeGetter = (*purgeGetterSrv)(nil)

func NewPurgeGetter(repo port.PurgeRepository, purger port.CdnPurger) port.PurgeGetter {
	return &purgeGetterSrv{repo: repo, purger: purger}
}

// GetPurge returns the purge record, refreshing it inline first while it is
// still in progress so a reader is never more than one request behind the
// provider. A refresh failure is not an error; the stored state is returned.
func (s *purgeGetterSrv) GetPurge(ctx context.Context, id uuid.UUID) (*model.CdnPurge, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if p.Status != model.PurgeStatusInProgress || p.OperationURL == nil {
		return p, nil
	}

	status, err := s.purger.GetOperationStatus(ctx, *p.OperationURL)
	if err != nil {
		log.Printf("failed to refresh purge #%s status: %v", p.ID, err)
		return p, nil
	}

	switch status.Status {
	case port.OperationSucceeded:
		now := time.Now().UTC()
		p.Status = model.PurgeStatusSucceeded
		p.CompletedAt = &now
	case port.OperationFailed:
		now := time.Now().UTC()
		p.Status = model.PurgeStatusFailed
		p.CompletedAt = &now
		if status.ErrorMessage != "" {
			p.ErrorMessage = &status.ErrorMessage
		}
	default:
		return p, nil
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
