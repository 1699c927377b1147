package model

import (
	"time"

	"github.com/edustream/videos-ms-go/internal/uuid"
)

const (
	VideoStatusUploadInProgress    = "upload_in_progress"
	VideoStatusUploadComplete      = "upload_complete"
	VideoStatusTranscodeInProgress = "transcode_in_progress"
	VideoStatusReady               = "video_ready"
	VideoStatusPosterInProgress    = "poster_in_progress"
	VideoStatusError               = "error"
	VideoStatusDraft               = "draft"
	VideoStatusTranscodeTimeout    = "transcode_timeout"
)

type Video struct {
	ID             uuid.UUID     `json:"id"`
	UID            string        `json:"uid"`
	Title          string        `json:"title"`
	Description    *string       `json:"description,omitempty"`
	Status         string        `json:"status"`
	ArtifactNames  ArtifactNames `json:"artifact_names"`
	StreamingURL   *string       `json:"streaming_url,omitempty"`
	PosterPath     *string       `json:"poster_path,omitempty"`
	FailureMessage *string       `json:"failure_message,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
	DeletedAt      *time.Time    `json:"deleted_at,omitempty"`
}

// IsPipelineTerminal reports whether no further automatic transition will
// happen for this video without external intervention.
func (v *Video) IsPipelineTerminal() bool {
	switch v.Status {
	case VideoStatusReady, VideoStatusError, VideoStatusDraft, VideoStatusTranscodeTimeout:
		return true
	}
	return false
}
