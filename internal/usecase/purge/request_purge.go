package purge

import (
	"context"
	"errors"

	"github.com/edustream/videos-ms-go/internal/model"
	"github.com/edustream/videos-ms-go/internal/port"
)

type purgeRequesterSrv struct {
	repo       port.PurgeRepository
	dispatcher port.TaskDispatcher
	genUUID    port.UUIDGen
}

// compile-time check: *purgeRequesterSrv must satisfy port.PurgeRequester
var _ port.PurgeRequester = (*purgeRequesterSrv)(nil)

func NewPurgeRequester(repo port.PurgeRepository, dispatcher port.TaskDispatcher, genUUID port.UUIDGen) port.PurgeRequester {
	return &purgeRequesterSrv{repo: repo, dispatcher: dispatcher, genUUID: genUUID}
}

// RequestPurge records the purge and enqueues its submission. The path list
// is frozen here; later stages only ever touch the status columns.
func (s *purgeRequesterSrv) RequestPurge(ctx context.Context, paths []string) (*model.CdnPurge, error) {
	if len(paths) == 0 {
		return nil, errors.New("a purge needs at least one path")
	}

	p := &model.CdnPurge{
		ID:     s.genUUID(),
		Paths:  append(model.PurgePaths{}, paths...),
		Status: model.PurgeStatusPending,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	if err := s.dispatcher.EnqueueInitiatePurge(ctx, p.ID); err != nil {
		return nil, err
	}
	return p, nil
}
