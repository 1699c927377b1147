package document

import (
	"context"
	"fmt"
	"strings"

	"github.com/edustream/videos-ms-go/internal/model"
	"github.com/edustream/videos-ms-go/internal/port"
	"github.com/edustream/videos-ms-go/internal/uuid"
)

type documentDeleterSrv struct {
	repo      port.DocumentRepository
	strg      port.Storage
	requester port.PurgeRequester
	container string
}

// compile-time check: *documentDeleterSrv must satisfy port.DocumentDeleter
var _ port.DocumentDeleter = (*documentDeleterSrv)(nil)

func NewDocumentDeleter(repo port.DocumentRepository, strg port.Storage, requester port.PurgeRequester, container string) port.DocumentDeleter {
	return &documentDeleterSrv{repo: repo, strg: strg, requester: requester, container: container}
}

// DeleteDocument removes the blob and the record, then requests a purge of
// the public path so cached copies die too.
func (s *documentDeleterSrv) DeleteDocument(ctx context.Context, id uuid.UUID) (*model.CdnPurge, error) {
	doc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fileKey := strings.TrimPrefix(doc.Path, s.container+"/")
	if err := s.strg.RemoveFile(ctx, s.container, fileKey); err != nil {
		return nil, fmt.Errorf("failed to remove document %q: %w", fileKey, err)
	}

	if err := s.repo.Delete(ctx, doc.ID); err != nil {
		return nil, err
	}

	return s.requester.RequestPurge(ctx, []string{"/" + doc.Path})
}
