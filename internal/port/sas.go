package port

import "time"

// SasSigner produces time- and capability-scoped query strings granting
// delegated access to a storage resource. Pure apart from reading the
// signing key: no network calls.
type SasSigner interface {
	BlobSAS(container, blob, permissions string, start, end time.Time) (string, error)
	ContainerSAS(container, permissions string, start, end time.Time) (string, error)
}
