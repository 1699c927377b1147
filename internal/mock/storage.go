package mock

import (
	"bytes"
	"context"
	"io"

	"github.com/edustream/videos-ms-go/internal/port"
)

// Storage implements the storage interface for tests.
type Storage struct {
	// stored values
	StatInfoOut port.FileInfo
	GetOut      []byte

	// captured inputs
	Containers []string
	ObjectKeys []string
	SavedData  map[string][]byte

	// errors
	CreateContainerErr error
	SaveErr            error
	GetErr             error
	StatErr            error
	RemoveErr          error

	// call flags
	CreateContainerCalled bool
	SaveCalled            bool
	GetCalled             bool
	StatCalled            bool
	RemoveCalled          bool
	RemovedKeys           []string
}

func (m *Storage) CreateContainer(ctx context.Context, container string) error {
	m.CreateContainerCalled = true
	m.Containers = append(m.Containers, container)
	return m.CreateContainerErr
}

func (m *Storage) SaveFile(ctx context.Context, container, fileKey string, reader io.Reader, fileSize int64, contentType string) error {
	m.SaveCalled = true
	m.Containers = append(m.Containers, container)
	m.ObjectKeys = append(m.ObjectKeys, fileKey)
	if m.SaveErr != nil {
		return m.SaveErr
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	if m.SavedData == nil {
		m.SavedData = map[string][]byte{}
	}
	m.SavedData[container+"/"+fileKey] = data
	return nil
}

func (m *Storage) GetFile(ctx context.Context, container, fileKey string) (io.ReadCloser, error) {
	m.GetCalled = true
	m.Containers = append(m.Containers, container)
	m.ObjectKeys = append(m.ObjectKeys, fileKey)
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if m.GetOut != nil {
		return io.NopCloser(bytes.NewReader(m.GetOut)), nil
	}
	return io.NopCloser(bytes.NewReader([]byte("dummy"))), nil
}

func (m *Storage) StatFile(ctx context.Context, container, fileKey string) (port.FileInfo, error) {
	m.StatCalled = true
	if m.StatErr != nil {
		return port.FileInfo{}, m.StatErr
	}
	return m.StatInfoOut, nil
}

func (m *Storage) RemoveFile(ctx context.Context, container, fileKey string) error {
	m.RemoveCalled = true
	m.RemovedKeys = append(m.RemovedKeys, container+"/"+fileKey)
	return m.RemoveErr
}
