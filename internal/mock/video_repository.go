package mock

import (
	"context"

	"github.com/edustream/videos-ms-go/internal/model"
	"github.com/edustream/videos-ms-go/internal/uuid"
)

// MockVideoRepo implements repository operations for tests.
type MockVideoRepo struct {
	VideoRecord *model.Video

	GetErr        error
	GetByUIDErr   error
	CreateErr     error
	UpdateErr     error
	SoftDeleteErr error

	GetCalled        bool
	GetByUIDCalled   bool
	GotUID           string
	Created          *model.Video
	Updated          *model.Video
	Updates          []model.Video
	SoftDeleteCalled bool
	DeletedID        uuid.UUID
}

func (m *MockVideoRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Video, error) {
	m.GetCalled = true
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.VideoRecord, nil
}

func (m *MockVideoRepo) GetByUID(ctx context.Context, uid string) (*model.Video, error) {
	m.GetByUIDCalled = true
	m.GotUID = uid
	if m.GetByUIDErr != nil {
		return nil, m.GetByUIDErr
	}
	return m.VideoRecord, nil
}

func (m *MockVideoRepo) Create(ctx context.Context, video *model.Video) error {
	m.Created = video
	return m.CreateErr
}

func (m *MockVideoRepo) Update(ctx context.Context, video *model.Video) error {
	m.Updated = video
	m.Updates = append(m.Updates, *video)
	return m.UpdateErr
}

func (m *MockVideoRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	m.SoftDeleteCalled = true
	m.DeletedID = id
	return m.SoftDeleteErr
}
