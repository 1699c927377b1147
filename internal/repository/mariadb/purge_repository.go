package mariadb

import (
	"context"
	"database/sql"
	"log"

	"github.com/edustream/videos-ms-go/internal/model"
	"github.com/edustream/videos-ms-go/internal/port"
	"github.com/edustream/videos-ms-go/internal/uuid"
)

type PurgeRepository struct {
	db *sql.DB
}

// compile-time check: *PurgeRepository must satisfy port.PurgeRepository
var _ port.PurgeRepository = (*PurgeRepository)(nil)

func NewPurgeRepository(db *sql.DB) *PurgeRepository {
	return &PurgeRepository{db: db}
}

func (r *PurgeRepository) Create(ctx context.Context, purge *model.CdnPurge) error {
	log.Printf("creating database record for purge #%s, at status %q...", purge.ID, purge.Status)

	const query = `
      INSERT INTO cdn_purges
        (id, paths, status, operation_url, request_id, error_message, completed_at)
      VALUES (?, ?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		purge.ID, purge.Paths, purge.Status,
		purge.OperationURL, purge.RequestID,
		purge.ErrorMessage, purge.CompletedAt,
	)
	if err != nil {
		return err
	}

	return nil
}

// Update leaves paths out: the path list is fixed at creation.
func (r *PurgeRepository) Update(ctx context.Context, purge *model.CdnPurge) error {
	log.Printf("updating database record for purge #%s, with status %q...", purge.ID, purge.Status)

	const query = `
      UPDATE cdn_purges
      SET
        status        = ?,
        operation_url = ?,
        request_id    = ?,
        error_message = ?,
        completed_at  = ?
      WHERE id = ?
    `
	_, err := r.db.ExecContext(ctx, query,
		purge.Status,
		purge.OperationURL,
		purge.RequestID,
		purge.ErrorMessage,
		purge.CompletedAt,
		purge.ID, // WHERE clause
	)
	if err != nil {
		return err
	}

	return nil
}

func (r *PurgeRepository) GetByID(ctx context.Context, ID uuid.UUID) (*model.CdnPurge, error) {
	log.Printf("fetching purge #%s from the database...", ID)

	const query = `
      SELECT id, paths, status, operation_url, request_id, error_message, completed_at, created_at, updated_at
      FROM cdn_purges
      WHERE id = ?
    `
	row := r.db.QueryRowContext(ctx, query, ID)
	var purge model.CdnPurge
	if err := row.Scan(
		&purge.ID, &purge.Paths, &purge.Status,
		&purge.OperationURL, &purge.RequestID,
		&purge.ErrorMessage, &purge.CompletedAt,
		&purge.CreatedAt, &purge.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &purge, nil
}
