package transcoder

import (
	"context"
	"fmt"

	"github.com/edustream/videos-ms-go/internal/port"

	"resty.dev/v3"
)

// APIError is a non-success response from the transcoding service. The raw
// body is kept so the poller can log it verbatim.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("transcoder: api returned status %d: %s", e.StatusCode, e.Body)
}

// Client talks to the transcoding service's REST API. All operations are
// keyed by the artifact names stored on the video record.
type Client struct {
	http           *resty.Client
	project        string
	transform      string
	storageAccount string
}

// compile-time check: *Client must satisfy port.Transcoder
var _ port.Transcoder = (*Client)(nil)

func NewClient(baseURL, token, project, transform, storageAccount string) *Client {
	c := resty.New()
	c.SetBaseURL(baseURL)
	c.SetHeader("X-Mkio-Token", token)
	c.SetHeader("Content-Type", "application/json")

	return &Client{
		http:           c,
		project:        project,
		transform:      transform,
		storageAccount: storageAccount,
	}
}

type jobStatusResponse struct {
	Properties struct {
		State string `json:"state"`
	} `json:"properties"`
}

type listPathsResponse struct {
	StreamingPaths []struct {
		StreamingProtocol string   `json:"streamingProtocol"`
		Paths             []string `json:"paths"`
	} `json:"streamingPaths"`
}

func (c *Client) CreateAsset(ctx context.Context, assetName, containerName string) error {
	body := map[string]any{
		"properties": map[string]any{
			"container":          containerName,
			"storageAccountName": c.storageAccount,
		},
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		Put(fmt.Sprintf("/ams/%s/assets/%s", c.project, assetName))
	if err != nil {
		return fmt.Errorf("transcoder: create asset %q: %w", assetName, err)
	}
	if resp.IsError() {
		return &APIError{StatusCode: resp.StatusCode(), Body: resp.String()}
	}
	return nil
}

func (c *Client) CreateJob(ctx context.Context, inputAsset, inputFile, outputAsset, jobName string) error {
	body := map[string]any{
		"properties": map[string]any{
			"input": map[string]any{
				"@odata.type": "#Microsoft.Media.JobInputAsset",
				"assetName":   inputAsset,
				"files":       []string{inputFile},
			},
			"outputs": []map[string]any{
				{
					"@odata.type": "#Microsoft.Media.JobOutputAsset",
					"assetName":   outputAsset,
				},
			},
		},
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		Put(c.jobURL(jobName))
	if err != nil {
		return fmt.Errorf("transcoder: create job %q: %w", jobName, err)
	}
	if resp.IsError() {
		return &APIError{StatusCode: resp.StatusCode(), Body: resp.String()}
	}
	return nil
}

func (c *Client) GetJobStatus(ctx context.Context, jobName string) (port.JobStatus, error) {
	var out jobStatusResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get(c.jobURL(jobName))
	if err != nil {
		return port.JobStatus{}, fmt.Errorf("transcoder: get job status %q: %w", jobName, err)
	}
	if resp.IsError() {
		return port.JobStatus{}, &APIError{StatusCode: resp.StatusCode(), Body: resp.String()}
	}
	return port.JobStatus{State: out.Properties.State}, nil
}

func (c *Client) CreateStreamingLocator(ctx context.Context, locatorName, outputAsset string) error {
	body := map[string]any{
		"properties": map[string]any{
			"assetName":           outputAsset,
			"streamingPolicyName": "Predefined_ClearStreamingOnly",
		},
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		Put(fmt.Sprintf("/ams/%s/streamingLocators/%s", c.project, locatorName))
	if err != nil {
		return fmt.Errorf("transcoder: create streaming locator %q: %w", locatorName, err)
	}
	if resp.IsError() {
		return &APIError{StatusCode: resp.StatusCode(), Body: resp.String()}
	}
	return nil
}

func (c *Client) ListStreamingPaths(ctx context.Context, locatorName string) ([]port.StreamingPath, error) {
	var out listPathsResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Post(fmt.Sprintf("/ams/%s/streamingLocators/%s/listPaths", c.project, locatorName))
	if err != nil {
		return nil, fmt.Errorf("transcoder: list paths for locator %q: %w", locatorName, err)
	}
	if resp.IsError() {
		return nil, &APIError{StatusCode: resp.StatusCode(), Body: resp.String()}
	}

	paths := make([]port.StreamingPath, 0, len(out.StreamingPaths))
	for _, p := range out.StreamingPaths {
		paths = append(paths, port.StreamingPath{
			Protocol: p.StreamingProtocol,
			Paths:    p.Paths,
		})
	}
	return paths, nil
}

func (c *Client) jobURL(jobName string) string {
	return fmt.Sprintf("/ams/%s/transforms/%s/jobs/%s", c.project, c.transform, jobName)
}
