package document

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/edustream/videos-ms-go/internal/model"
	"github.com/edustream/videos-ms-go/internal/port"
)

type documentReplacerSrv struct {
	repo      port.DocumentRepository
	strg      port.Storage
	optimiser port.Optimiser
	requester port.PurgeRequester
	container string
}

// compile-time check: *documentReplacerSrv must satisfy port.DocumentReplacer
var _ port.DocumentReplacer = (*documentReplacerSrv)(nil)

func NewDocumentReplacer(repo port.DocumentRepository, strg port.Storage, optimiser port.Optimiser, requester port.PurgeRequester, container string) port.DocumentReplacer {
	return &documentReplacerSrv{repo: repo, strg: strg, optimiser: optimiser, requester: requester, container: container}
}

// ReplaceDocument overwrites the stored blob under the same path and
// requests a purge of it, so the CDN stops serving the stale copy. The path
// never changes on replacement; the purge is what makes the swap visible.
func (s *documentReplacerSrv) ReplaceDocument(ctx context.Context, in port.ReplaceDocumentInput) (*model.Document, *model.CdnPurge, error) {
	doc, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, nil, err
	}

	data, pageCount, hash, err := preparePDF(s.optimiser, in.File)
	if err != nil {
		return nil, nil, err
	}

	fileKey := strings.TrimPrefix(doc.Path, s.container+"/")
	if err := s.strg.SaveFile(ctx, s.container, fileKey, bytes.NewReader(data), int64(len(data)), ContentTypePDF); err != nil {
		return nil, nil, fmt.Errorf("failed to overwrite document %q: %w", fileKey, err)
	}

	if in.Title != nil {
		doc.Title = *in.Title
	}
	doc.SizeBytes = int64(len(data))
	doc.Sha256 = hash
	doc.PageCount = pageCount
	if err := s.repo.Update(ctx, doc); err != nil {
		return nil, nil, err
	}

	purge, err := s.requester.RequestPurge(ctx, []string{"/" + doc.Path})
	if err != nil {
		return nil, nil, err
	}
	return doc, purge, nil
}
