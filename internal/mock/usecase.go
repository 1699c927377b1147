package mock

import (
	"context"

	"github.com/edustream/videos-ms-go/internal/model"
	"github.com/edustream/videos-ms-go/internal/port"
	"github.com/edustream/videos-ms-go/internal/uuid"
)

// MockVideoGetter implements port.VideoGetter for tests.
type MockVideoGetter struct {
	Out    *port.GetVideoOutput
	Err    error
	Called bool
	GotUID string
}

func (m *MockVideoGetter) GetVideo(ctx context.Context, uid string) (*port.GetVideoOutput, error) {
	m.Called = true
	m.GotUID = uid
	return m.Out, m.Err
}

// MockVideoCreator implements port.VideoCreator for tests.
type MockVideoCreator struct {
	Out    port.CreateVideoOutput
	Err    error
	Called bool
	In     port.CreateVideoInput
}

func (m *MockVideoCreator) CreateVideo(ctx context.Context, in port.CreateVideoInput) (port.CreateVideoOutput, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// MockUploadFinaliser implements port.UploadFinaliser for tests.
type MockUploadFinaliser struct {
	Err    error
	Called bool
	GotID  uuid.UUID
}

func (m *MockUploadFinaliser) FinaliseUpload(ctx context.Context, id uuid.UUID) error {
	m.Called = true
	m.GotID = id
	return m.Err
}

// MockTranscodeSubmitter implements port.TranscodeSubmitter for tests.
type MockTranscodeSubmitter struct {
	Err    error
	Called bool
	GotID  uuid.UUID
}

func (m *MockTranscodeSubmitter) SubmitTranscode(ctx context.Context, id uuid.UUID) error {
	m.Called = true
	m.GotID = id
	return m.Err
}

// MockTranscodePoller implements port.TranscodePoller for tests.
type MockTranscodePoller struct {
	Err    error
	Called bool
	In     port.PollTranscodeInput
}

func (m *MockTranscodePoller) PollTranscode(ctx context.Context, in port.PollTranscodeInput) error {
	m.Called = true
	m.In = in
	return m.Err
}

// MockPosterExtractor implements port.PosterExtractor for tests.
type MockPosterExtractor struct {
	Err    error
	Called bool
	GotID  uuid.UUID
}

func (m *MockPosterExtractor) ExtractPoster(ctx context.Context, id uuid.UUID) error {
	m.Called = true
	m.GotID = id
	return m.Err
}

// MockVideoEditor implements port.VideoEditor for tests.
type MockVideoEditor struct {
	Err    error
	Called bool
	In     port.EditVideoInput
}

func (m *MockVideoEditor) EditVideo(ctx context.Context, in port.EditVideoInput) error {
	m.Called = true
	m.In = in
	return m.Err
}

// MockVideoDeleter implements port.VideoDeleter for tests.
type MockVideoDeleter struct {
	Err    error
	Called bool
	GotID  uuid.UUID
}

func (m *MockVideoDeleter) DeleteVideo(ctx context.Context, id uuid.UUID) error {
	m.Called = true
	m.GotID = id
	return m.Err
}

// MockPurgeRequester implements port.PurgeRequester for tests.
type MockPurgeRequester struct {
	Out    *model.CdnPurge
	Err    error
	Called bool
	Paths  []string
}

func (m *MockPurgeRequester) RequestPurge(ctx context.Context, paths []string) (*model.CdnPurge, error) {
	m.Called = true
	m.Paths = paths
	return m.Out, m.Err
}

// MockPurgeInitiator implements port.PurgeInitiator for tests.
type MockPurgeInitiator struct {
	Err    error
	Called bool
	GotID  uuid.UUID
}

func (m *MockPurgeInitiator) InitiatePurge(ctx context.Context, id uuid.UUID) error {
	m.Called = true
	m.GotID = id
	return m.Err
}

// MockPurgeTracker implements port.PurgeTracker for tests.
type MockPurgeTracker struct {
	Err    error
	Called bool
	In     port.TrackPurgeInput
}

func (m *MockPurgeTracker) TrackPurge(ctx context.Context, in port.TrackPurgeInput) error {
	m.Called = true
	m.In = in
	return m.Err
}

// MockPurgeGetter implements port.PurgeGetter for tests.
type MockPurgeGetter struct {
	Out    *model.CdnPurge
	Err    error
	Called bool
	GotID  uuid.UUID
}

func (m *MockPurgeGetter) GetPurge(ctx context.Context, id uuid.UUID) (*model.CdnPurge, error) {
	m.Called = true
	m.GotID = id
	return m.Out, m.Err
}

// MockDocumentUploader implements port.DocumentUploader for tests.
type MockDocumentUploader struct {
	Out    *model.Document
	Err    error
	Called bool
	In     port.UploadDocumentInput
}

func (m *MockDocumentUploader) UploadDocument(ctx context.Context, in port.UploadDocumentInput) (*model.Document, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// MockDocumentReplacer implements port.DocumentReplacer for tests.
type MockDocumentReplacer struct {
	Out      *model.Document
	PurgeOut *model.CdnPurge
	Err      error
	Called   bool
	In       port.ReplaceDocumentInput
}

func (m *MockDocumentReplacer) ReplaceDocument(ctx context.Context, in port.ReplaceDocumentInput) (*model.Document, *model.CdnPurge, error) {
	m.Called = true
	m.In = in
	return m.Out, m.PurgeOut, m.Err
}

// MockDocumentDeleter implements port.DocumentDeleter for tests.
type MockDocumentDeleter struct {
	PurgeOut *model.CdnPurge
	Err      error
	Called   bool
	GotID    uuid.UUID
}

func (m *MockDocumentDeleter) DeleteDocument(ctx context.Context, id uuid.UUID) (*model.CdnPurge, error) {
	m.Called = true
	m.GotID = id
	return m.PurgeOut, m.Err
}
