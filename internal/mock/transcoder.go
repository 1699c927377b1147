package mock

import (
	"context"

	"github.com/edustream/videos-ms-go/internal/port"
)

// Transcoder implements the transcoding service contract for tests. When
// StatusSeq is non-empty, successive GetJobStatus calls walk through it and
// the last element repeats.
type Transcoder struct {
	// stored values
	StatusOut port.JobStatus
	StatusSeq []port.JobStatus
	PathsOut  []port.StreamingPath

	// captured inputs
	CreatedAssets   []string
	CreatedJob      string
	JobInputAsset   string
	JobInputFile    string
	JobOutputAsset  string
	StatusJobNames  []string
	LocatorName     string
	LocatorAsset    string
	ListLocatorName string

	// errors
	CreateAssetErr   error
	CreateJobErr     error
	GetJobStatusErr  error
	CreateLocatorErr error
	ListPathsErr     error

	// call flags
	CreateAssetCalled   bool
	CreateJobCalled     bool
	GetJobStatusCalls   int
	CreateLocatorCalled bool
	ListPathsCalled     bool
}

func (m *Transcoder) CreateAsset(ctx context.Context, assetName, containerName string) error {
	m.CreateAssetCalled = true
	m.CreatedAssets = append(m.CreatedAssets, assetName)
	return m.CreateAssetErr
}

func (m *Transcoder) CreateJob(ctx context.Context, inputAsset, inputFile, outputAsset, jobName string) error {
	m.CreateJobCalled = true
	m.JobInputAsset = inputAsset
	m.JobInputFile = inputFile
	m.JobOutputAsset = outputAsset
	m.CreatedJob = jobName
	return m.CreateJobErr
}

func (m *Transcoder) GetJobStatus(ctx context.Context, jobName string) (port.JobStatus, error) {
	m.GetJobStatusCalls++
	m.StatusJobNames = append(m.StatusJobNames, jobName)
	if m.GetJobStatusErr != nil {
		return port.JobStatus{}, m.GetJobStatusErr
	}
	if len(m.StatusSeq) > 0 {
		i := m.GetJobStatusCalls - 1
		if i >= len(m.StatusSeq) {
			i = len(m.StatusSeq) - 1
		}
		return m.StatusSeq[i], nil
	}
	return m.StatusOut, nil
}

func (m *Transcoder) CreateStreamingLocator(ctx context.Context, locatorName, outputAsset string) error {
	m.CreateLocatorCalled = true
	m.LocatorName = locatorName
	m.LocatorAsset = outputAsset
	return m.CreateLocatorErr
}

func (m *Transcoder) ListStreamingPaths(ctx context.Context, locatorName string) ([]port.StreamingPath, error) {
	m.ListPathsCalled = true
	m.ListLocatorName = locatorName
	if m.ListPathsErr != nil {
		return nil, m.ListPathsErr
	}
	return m.PathsOut, nil
}
