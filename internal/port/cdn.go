package port

import "context"

// Async-operation states reported by the cache-purge service.
const (
	OperationInProgress = "InProgress"
	OperationSucceeded  = "Succeeded"
	OperationFailed     = "Failed"
)

// PurgeResponse carries what the purge endpoint returned: the HTTP status
// class decides success, and the operation URL is the opaque handle for the
// follow-up status polls.
type PurgeResponse struct {
	StatusCode   int
	OperationURL string
	RequestID    string
}

// Accepted reports whether the purge request was taken by the provider.
func (r PurgeResponse) Accepted() bool {
	return r.StatusCode == 200 || r.StatusCode == 202
}

type OperationStatus struct {
	Status       string
	ErrorMessage string
}

// CdnPurger is the narrow contract with the external cache-purge service.
type CdnPurger interface {
	Purge(ctx context.Context, paths []string) (PurgeResponse, error)
	GetOperationStatus(ctx context.Context, operationURL string) (OperationStatus, error)
}
