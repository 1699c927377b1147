package cdn

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/edustream/videos-ms-go/internal/port"

	"resty.dev/v3"
)

const purgeAPIVersion = "2023-05-01"

// Config identifies the front-door endpoint purges are issued against and
// the service principal used to authenticate to the management plane.
type Config struct {
	// ManagementBaseURL and LoginBaseURL exist so tests can point the
	// client at a local server; production wiring leaves them empty.
	ManagementBaseURL string
	LoginBaseURL      string

	TenantID       string
	ClientID       string
	ClientSecret   string
	SubscriptionID string
	ResourceGroup  string
	ProfileName    string
	EndpointName   string
}

// Client implements the cache-purge contract against the CDN's management
// API. The purge endpoint answers with an async-operation URL in a response
// header; completion is observed by polling that URL.
type Client struct {
	http *resty.Client
	cfg  Config

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

// compile-time check: *Client must satisfy port.CdnPurger
var _ port.CdnPurger = (*Client)(nil)

func NewClient(cfg Config) *Client {
	if cfg.ManagementBaseURL == "" {
		cfg.ManagementBaseURL = "https://management.azure.com"
	}
	if cfg.LoginBaseURL == "" {
		cfg.LoginBaseURL = "https://login.microsoftonline.com"
	}

	c := resty.New()
	c.SetTimeout(30 * time.Second)

	return &Client{http: c, cfg: cfg}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

type operationResponse struct {
	Status string `json:"status"`
	Error  *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.tokenExpiry) {
		return c.token, nil
	}

	var out tokenResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"grant_type":    "client_credentials",
			"client_id":     c.cfg.ClientID,
			"client_secret": c.cfg.ClientSecret,
			"scope":         "https://management.azure.com/.default",
		}).
		SetResult(&out).
		Post(fmt.Sprintf("%s/%s/oauth2/v2.0/token", c.cfg.LoginBaseURL, c.cfg.TenantID))
	if err != nil {
		return "", fmt.Errorf("cdn: token request: %w", err)
	}
	if resp.IsError() || out.AccessToken == "" {
		return "", fmt.Errorf("cdn: token request returned status %d: %s", resp.StatusCode(), resp.String())
	}

	c.token = out.AccessToken
	// refresh one minute before the provider-side expiry
	c.tokenExpiry = time.Now().Add(time.Duration(out.ExpiresIn)*time.Second - time.Minute)
	return c.token, nil
}

// Purge submits the content paths for invalidation. The status code is
// returned to the caller as-is: classifying it is the submitter's job, not
// the transport's.
func (c *Client) Purge(ctx context.Context, paths []string) (port.PurgeResponse, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return port.PurgeResponse{}, err
	}

	endpoint := fmt.Sprintf(
		"%s/subscriptions/%s/resourceGroups/%s/providers/Microsoft.Cdn/profiles/%s/afdEndpoints/%s/purge",
		c.cfg.ManagementBaseURL,
		c.cfg.SubscriptionID,
		c.cfg.ResourceGroup,
		c.cfg.ProfileName,
		c.cfg.EndpointName,
	)

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("api-version", purgeAPIVersion).
		SetBody(map[string]any{"contentPaths": paths}).
		Post(endpoint)
	if err != nil {
		return port.PurgeResponse{}, fmt.Errorf("cdn: purge request: %w", err)
	}

	operationURL := resp.Header().Get("Azure-Asyncoperation")
	if operationURL == "" {
		operationURL = resp.Header().Get("Location")
	}

	return port.PurgeResponse{
		StatusCode:   resp.StatusCode(),
		OperationURL: operationURL,
		RequestID:    resp.Header().Get("X-Ms-Request-Id"),
	}, nil
}

// GetOperationStatus queries a previously returned async-operation URL.
func (c *Client) GetOperationStatus(ctx context.Context, operationURL string) (port.OperationStatus, error) {
	if _, err := url.Parse(operationURL); err != nil || operationURL == "" {
		return port.OperationStatus{}, fmt.Errorf("cdn: invalid operation url %q", operationURL)
	}

	token, err := c.accessToken(ctx)
	if err != nil {
		return port.OperationStatus{}, err
	}

	var out operationResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token).
		SetResult(&out).
		Get(operationURL)
	if err != nil {
		return port.OperationStatus{}, fmt.Errorf("cdn: operation status request: %w", err)
	}
	if resp.IsError() {
		return port.OperationStatus{}, fmt.Errorf("cdn: operation status returned %d: %s", resp.StatusCode(), resp.String())
	}

	status := out.Status
	if status == "" {
		status = port.OperationInProgress
	}
	op := port.OperationStatus{Status: status}
	if out.Error != nil {
		op.ErrorMessage = out.Error.Message
	}
	return op, nil
}
