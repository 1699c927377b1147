package port

import "context"

// Job states reported by the transcoding service. Queued and Processing are
// the usual non-terminal values, but the poller treats anything that is not
// Finished or Error as "not ready yet".
const (
	JobStateQueued     = "Queued"
	JobStateProcessing = "Processing"
	JobStateFinished   = "Finished"
	JobStateError      = "Error"
)

// StreamingProtocolHls is the adaptive-streaming variant the pipeline
// publishes.
const StreamingProtocolHls = "Hls"

type JobStatus struct {
	State string
}

type StreamingPath struct {
	Protocol string
	Paths    []string
}

// Transcoder is the narrow contract with the external transcoding service.
// Every operation is keyed by names from the video's artifact name set.
type Transcoder interface {
	CreateAsset(ctx context.Context, assetName, containerName string) error
	CreateJob(ctx context.Context, inputAsset, inputFile, outputAsset, jobName string) error
	GetJobStatus(ctx context.Context, jobName string) (JobStatus, error)
	CreateStreamingLocator(ctx context.Context, locatorName, outputAsset string) error
	ListStreamingPaths(ctx context.Context, locatorName string) ([]StreamingPath, error)
}
