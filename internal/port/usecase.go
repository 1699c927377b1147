package port

import (
	"context"
	"io"
	"time"

	"github.com/edustream/videos-ms-go/internal/model"
	"github.com/edustream/videos-ms-go/internal/uuid"
)

type UUIDGen func() uuid.UUID

// VideoCreator registers a new video, initialises its artifact names and
// provisions the external input resources (containers, input asset, upload
// SAS).
type VideoCreator interface {
	CreateVideo(ctx context.Context, in CreateVideoInput) (CreateVideoOutput, error)
}
type CreateVideoInput struct {
	Title       string
	Description *string
}
type CreateVideoOutput struct {
	ID        uuid.UUID `json:"id"`
	UID       string    `json:"uid"`
	UploadURL string    `json:"upload_url"`
}

// UploadFinaliser marks an upload as complete and hands the record to the
// transcode pipeline.
type UploadFinaliser interface {
	FinaliseUpload(ctx context.Context, id uuid.UUID) error
}

// TranscodeSubmitter creates the transcode job at the external service and
// arms the first poll.
type TranscodeSubmitter interface {
	SubmitTranscode(ctx context.Context, id uuid.UUID) error
}

// TranscodePoller performs exactly one status check per invocation and
// either finishes the stage or re-arms itself.
type TranscodePoller interface {
	PollTranscode(ctx context.Context, in PollTranscodeInput) error
}
type PollTranscodeInput struct {
	ID      uuid.UUID
	Attempt int
}

// PosterExtractor downloads the source, extracts a poster frame and uploads
// it, guarded by a per-record advisory lock.
type PosterExtractor interface {
	ExtractPoster(ctx context.Context, id uuid.UUID) error
}

// VideoGetter retrieves public video details by UID.
type VideoGetter interface {
	GetVideo(ctx context.Context, uid string) (*GetVideoOutput, error)
}
type GetVideoOutput struct {
	ValidUntil   time.Time `json:"valid_until"`
	UID          string    `json:"uid"`
	Title        string    `json:"title"`
	Status       string    `json:"status"`
	StreamingURL string    `json:"streaming_url,omitempty"`
	SourceURL    string    `json:"source_url,omitempty"`
	PosterURL    string    `json:"poster_url,omitempty"`
}

// VideoEditor applies operator edits; it is the only way into the draft
// state and may force a retry out of the error state.
type VideoEditor interface {
	EditVideo(ctx context.Context, in EditVideoInput) error
}
type EditVideoInput struct {
	ID          uuid.UUID
	Title       *string
	Description *string
	Draft       bool
	Retry       bool
}

// VideoDeleter soft-deletes a video so the record disappears from lookups
// while external artifacts remain reclaimable.
type VideoDeleter interface {
	DeleteVideo(ctx context.Context, id uuid.UUID) error
}

// PurgeRequester creates a purge record and enqueues its initiation.
type PurgeRequester interface {
	RequestPurge(ctx context.Context, paths []string) (*model.CdnPurge, error)
}

// PurgeInitiator submits a pending purge to the cache-purge service.
type PurgeInitiator interface {
	InitiatePurge(ctx context.Context, id uuid.UUID) error
}

// PurgeTracker performs one status check of an in-progress purge, bounded
// by a maximum attempt count.
type PurgeTracker interface {
	TrackPurge(ctx context.Context, in TrackPurgeInput) error
}
type TrackPurgeInput struct {
	ID      uuid.UUID
	Attempt int
}

// PurgeGetter retrieves a purge record, refreshing it first when still in
// progress.
type PurgeGetter interface {
	GetPurge(ctx context.Context, id uuid.UUID) (*model.CdnPurge, error)
}

// DocumentUploader stores a new CDN-served document.
type DocumentUploader interface {
	UploadDocument(ctx context.Context, in UploadDocumentInput) (*model.Document, error)
}
type UploadDocumentInput struct {
	Title string
	File  io.Reader
}

// DocumentReplacer overwrites an existing document in place and requests a
// purge of its public path.
type DocumentReplacer interface {
	ReplaceDocument(ctx context.Context, in ReplaceDocumentInput) (*model.Document, *model.CdnPurge, error)
}
type ReplaceDocumentInput struct {
	ID    uuid.UUID
	Title *string
	File  io.Reader
}

// DocumentDeleter removes a document and requests a purge of its public
// path.
type DocumentDeleter interface {
	DeleteDocument(ctx context.Context, id uuid.UUID) (*model.CdnPurge, error)
}
