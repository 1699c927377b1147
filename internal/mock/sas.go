package mock

import "time"

// SasSigner implements SAS generation for tests.
type SasSigner struct {
	BlobOut      string
	ContainerOut string
	BlobErr      error
	ContainerErr error

	BlobCalled      bool
	ContainerCalled bool
	Container       string
	Blob            string
	Permissions     string
	Start           time.Time
	End             time.Time
}

func (m *SasSigner) BlobSAS(container, blob, permissions string, start, end time.Time) (string, error) {
	m.BlobCalled = true
	m.Container = container
	m.Blob = blob
	m.Permissions = permissions
	m.Start = start
	m.End = end
	if m.BlobErr != nil {
		return "", m.BlobErr
	}
	if m.BlobOut != "" {
		return m.BlobOut, nil
	}
	return "sig=blob-sas", nil
}

func (m *SasSigner) ContainerSAS(container, permissions string, start, end time.Time) (string, error) {
	m.ContainerCalled = true
	m.Container = container
	m.Permissions = permissions
	m.Start = start
	m.End = end
	if m.ContainerErr != nil {
		return "", m.ContainerErr
	}
	if m.ContainerOut != "" {
		return m.ContainerOut, nil
	}
	return "sig=container-sas", nil
}
