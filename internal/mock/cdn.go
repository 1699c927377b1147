package mock

import (
	"context"

	"github.com/edustream/videos-ms-go/internal/port"
)

// CdnPurger implements the cache-purge service contract for tests.
type CdnPurger struct {
	// stored values
	PurgeOut  port.PurgeResponse
	StatusOut port.OperationStatus

	// captured inputs
	PurgedPaths  []string
	OperationURL string

	// errors
	PurgeErr  error
	StatusErr error

	// call flags
	PurgeCalled  bool
	StatusCalls  int
	StatusCalled bool
}

func (m *CdnPurger) Purge(ctx context.Context, paths []string) (port.PurgeResponse, error) {
	m.PurgeCalled = true
	m.PurgedPaths = paths
	if m.PurgeErr != nil {
		return port.PurgeResponse{}, m.PurgeErr
	}
	return m.PurgeOut, nil
}

func (m *CdnPurger) GetOperationStatus(ctx context.Context, operationURL string) (port.OperationStatus, error) {
	m.StatusCalled = true
	m.StatusCalls++
	m.OperationURL = operationURL
	if m.StatusErr != nil {
		return port.OperationStatus{}, m.StatusErr
	}
	return m.StatusOut, nil
}
