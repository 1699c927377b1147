package mariadb

import (
	"context"
	"database/sql"
	"log"

	"github.com/edustream/videos-ms-go/internal/model"
	"github.com/edustream/videos-ms-go/internal/port"
	"github.com/edustream/videos-ms-go/internal/uuid"
)

type DocumentRepository struct {
	db *sql.DB
}

// compile-time check: *DocumentRepository must satisfy port.DocumentRepository
var _ port.DocumentRepository = (*DocumentRepository)(nil)

func NewDocumentRepository(db *sql.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

func (r *DocumentRepository) Create(ctx context.Context, doc *model.Document) error {
	log.Printf("creating database record for document #%s...", doc.ID)

	const query = `
      INSERT INTO documents
        (id, title, path, size_bytes, content_type, hash_sha256, page_count)
      VALUES (?, ?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		doc.ID, doc.Title, doc.Path,
		doc.SizeBytes, doc.ContentType,
		doc.Sha256, doc.PageCount,
	)
	if err != nil {
		return err
	}

	return nil
}

func (r *DocumentRepository) Update(ctx context.Context, doc *model.Document) error {
	log.Printf("updating database record for document #%s...", doc.ID)

	const query = `
      UPDATE documents
      SET
        title        = ?,
        size_bytes   = ?,
        content_type = ?,
        hash_sha256  = ?,
        page_count   = ?
      WHERE id = ?
    `
	_, err := r.db.ExecContext(ctx, query,
		doc.Title,
		doc.SizeBytes,
		doc.ContentType,
		doc.Sha256,
		doc.PageCount,
		doc.ID, // WHERE clause
	)
	if err != nil {
		return err
	}

	return nil
}

func (r *DocumentRepository) GetByID(ctx context.Context, ID uuid.UUID) (*model.Document, error) {
	log.Printf("fetching document #%s from the database...", ID)

	const query = `
      SELECT id, title, path, size_bytes, content_type, hash_sha256, page_count, created_at, updated_at
      FROM documents
      WHERE id = ?
    `
	row := r.db.QueryRowContext(ctx, query, ID)
	var doc model.Document
	if err := row.Scan(
		&doc.ID, &doc.Title, &doc.Path,
		&doc.SizeBytes, &doc.ContentType,
		&doc.Sha256, &doc.PageCount,
		&doc.CreatedAt, &doc.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &doc, nil
}

func (r *DocumentRepository) Delete(ctx context.Context, ID uuid.UUID) error {
	log.Printf("deleting document #%s...", ID)

	const query = `DELETE FROM documents WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, ID)
	if err != nil {
		return err
	}

	return nil
}
