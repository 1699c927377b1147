package mariadb

import (
	"context"
	"database/sql"
	"log"

	"github.com/edustream/videos-ms-go/internal/model"
	"github.com/edustream/videos-ms-go/internal/port"
	"github.com/edustream/videos-ms-go/internal/uuid"
)

type VideoRepository struct {
	db *sql.DB
}

// compile-time check: *VideoRepository must satisfy port.VideoRepository
var _ port.VideoRepository = (*VideoRepository)(nil)

func NewVideoRepository(db *sql.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

func (r *VideoRepository) Create(ctx context.Context, video *model.Video) error {
	log.Printf("creating database record for video #%s, at status %q...", video.ID, video.Status)

	const query = `
      INSERT INTO videos
        (id, uid, title, description, status, artifact_names, streaming_url, poster_path, failure_message)
      VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		video.ID, video.UID, video.Title,
		video.Description, video.Status, video.ArtifactNames,
		video.StreamingURL, video.PosterPath, video.FailureMessage,
	)
	if err != nil {
		return err
	}

	return nil
}

// Update deliberately leaves artifact_names out: the name set is written
// once at Create and never changes afterwards.
func (r *VideoRepository) Update(ctx context.Context, video *model.Video) error {
	log.Printf("updating database record for video #%s, with status %q...", video.ID, video.Status)

	const query = `
      UPDATE videos
      SET
        title           = ?,
        description     = ?,
        status          = ?,
        streaming_url   = ?,
        poster_path     = ?,
        failure_message = ?
      WHERE id = ?
    `
	_, err := r.db.ExecContext(ctx, query,
		video.Title,
		video.Description,
		video.Status,
		video.StreamingURL,
		video.PosterPath,
		video.FailureMessage,
		video.ID, // WHERE clause
	)
	if err != nil {
		return err
	}

	return nil
}

func (r *VideoRepository) GetByID(ctx context.Context, ID uuid.UUID) (*model.Video, error) {
	log.Printf("fetching video #%s from the database...", ID)

	const query = `
      SELECT id, uid, title, description, status, artifact_names, streaming_url, poster_path, failure_message, created_at, updated_at, deleted_at
      FROM videos
      WHERE id = ? AND deleted_at IS NULL
    `
	row := r.db.QueryRowContext(ctx, query, ID)
	var video model.Video
	if err := row.Scan(
		&video.ID, &video.UID, &video.Title,
		&video.Description, &video.Status, &video.ArtifactNames,
		&video.StreamingURL, &video.PosterPath, &video.FailureMessage,
		&video.CreatedAt, &video.UpdatedAt, &video.DeletedAt,
	); err != nil {
		return nil, err
	}

	return &video, nil
}

func (r *VideoRepository) GetByUID(ctx context.Context, UID string) (*model.Video, error) {
	log.Printf("fetching video %q from the database...", UID)

	const query = `
      SELECT id, uid, title, description, status, artifact_names, streaming_url, poster_path, failure_message, created_at, updated_at, deleted_at
      FROM videos
      WHERE uid = ? AND deleted_at IS NULL
    `
	row := r.db.QueryRowContext(ctx, query, UID)
	var video model.Video
	if err := row.Scan(
		&video.ID, &video.UID, &video.Title,
		&video.Description, &video.Status, &video.ArtifactNames,
		&video.StreamingURL, &video.PosterPath, &video.FailureMessage,
		&video.CreatedAt, &video.UpdatedAt, &video.DeletedAt,
	); err != nil {
		return nil, err
	}

	return &video, nil
}

func (r *VideoRepository) SoftDelete(ctx context.Context, ID uuid.UUID) error {
	log.Printf("soft-deleting video #%s...", ID)

	const query = `
      UPDATE videos
      SET deleted_at = CURRENT_TIMESTAMP
      WHERE id = ? AND deleted_at IS NULL
    `
	_, err := r.db.ExecContext(ctx, query, ID)
	if err != nil {
		return err
	}

	return nil
}
