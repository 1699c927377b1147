package port

import (
	"context"

	"github.com/edustream/videos-ms-go/internal/model"
	"github.com/edustream/videos-ms-go/internal/uuid"
)

// PurgeRepository defines persistence operations for CDN purge records.
type PurgeRepository interface {
	Create(ctx context.Context, purge *model.CdnPurge) error
	Update(ctx context.Context, purge *model.CdnPurge) error
	GetByID(ctx context.Context, ID uuid.UUID) (*model.CdnPurge, error)
}

// DocumentRepository defines persistence operations for CDN-served documents.
type DocumentRepository interface {
	Create(ctx context.Context, doc *model.Document) error
	Update(ctx context.Context, doc *model.Document) error
	GetByID(ctx context.Context, ID uuid.UUID) (*model.Document, error)
	Delete(ctx context.Context, ID uuid.UUID) error
}
