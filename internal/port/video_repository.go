package port

import (
	"context"

	"github.com/edustream/videos-ms-go/internal/model"
	"github.com/edustream/videos-ms-go/internal/uuid"
)

// VideoRepository defines persistence operations for videos. Update never
// touches the artifact_names column: the name set is written once at Create
// and is immutable afterwards.
type VideoRepository interface {
	Create(ctx context.Context, video *model.Video) error
	Update(ctx context.Context, video *model.Video) error
	GetByID(ctx context.Context, ID uuid.UUID) (*model.Video, error)
	GetByUID(ctx context.Context, UID string) (*model.Video, error)
	SoftDelete(ctx context.Context, ID uuid.UUID) error
}
