package mock

import (
	"context"

	"github.com/edustream/videos-ms-go/internal/model"
	"github.com/edustream/videos-ms-go/internal/uuid"
)

// MockPurgeRepo implements purge persistence for tests.
type MockPurgeRepo struct {
	PurgeRecord *model.CdnPurge

	GetErr    error
	CreateErr error
	UpdateErr error

	GetCalled bool
	Created   *model.CdnPurge
	Updated   *model.CdnPurge
	Updates   []model.CdnPurge
}

func (m *MockPurgeRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.CdnPurge, error) {
	m.GetCalled = true
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.PurgeRecord, nil
}

func (m *MockPurgeRepo) Create(ctx context.Context, purge *model.CdnPurge) error {
	m.Created = purge
	return m.CreateErr
}

func (m *MockPurgeRepo) Update(ctx context.Context, purge *model.CdnPurge) error {
	m.Updated = purge
	m.Updates = append(m.Updates, *purge)
	return m.UpdateErr
}

// MockDocumentRepo implements document persistence for tests.
type MockDocumentRepo struct {
	DocumentRecord *model.Document

	GetErr    error
	CreateErr error
	UpdateErr error
	DeleteErr error

	GetCalled    bool
	Created      *model.Document
	Updated      *model.Document
	DeleteCalled bool
	DeletedID    uuid.UUID
}

func (m *MockDocumentRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Document, error) {
	m.GetCalled = true
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.DocumentRecord, nil
}

func (m *MockDocumentRepo) Create(ctx context.Context, doc *model.Document) error {
	m.Created = doc
	return m.CreateErr
}

func (m *MockDocumentRepo) Update(ctx context.Context, doc *model.Document) error {
	m.Updated = doc
	return m.UpdateErr
}

func (m *MockDocumentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.DeleteCalled = true
	m.DeletedID = id
	return m.DeleteErr
}
