package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/edustream/videos-ms-go/internal/uuid"
)

const (
	PurgeStatusPending    = "pending"
	PurgeStatusInProgress = "in_progress"
	PurgeStatusSucceeded  = "succeeded"
	PurgeStatusFailed     = "failed"
)

// PurgePaths is the ordered list of CDN paths one purge request covers.
// Immutable after creation.
type PurgePaths []string

func (p PurgePaths) Value() (driver.Value, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal PurgePaths: %w", err)
	}
	return b, nil
}

func (p *PurgePaths) Scan(src interface{}) error {
	if src == nil {
		*p = nil
		return nil
	}
	data, ok := src.([]byte)
	if !ok {
		return errors.New("PurgePaths.Scan: expected []byte")
	}
	return json.Unmarshal(data, p)
}

// CdnPurge tracks one asynchronous cache-invalidation request against the
// CDN. The operation URL is the opaque handle returned by the provider and
// is required before polling can begin.
type CdnPurge struct {
	ID           uuid.UUID  `json:"id"`
	Paths        PurgePaths `json:"paths"`
	Status       string     `json:"status"`
	OperationURL *string    `json:"operation_url,omitempty"`
	RequestID    *string    `json:"request_id,omitempty"`
	ErrorMessage *string    `json:"error_message,omitempty"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// IsTerminal reports whether the purge reached a final state.
func (p *CdnPurge) IsTerminal() bool {
	return p.Status == PurgeStatusSucceeded || p.Status == PurgeStatusFailed
}
