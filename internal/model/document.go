package model

import (
	"time"

	"github.com/edustream/videos-ms-go/internal/uuid"
)

// Document is a CDN-served file (PDF) whose replacement or deletion must be
// followed by a cache purge of its public path.
type Document struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Path        string    `json:"path"`
	SizeBytes   int64     `json:"size_bytes"`
	ContentType string    `json:"content_type"`
	Sha256      string    `json:"hash_sha256"`
	PageCount   int       `json:"page_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
