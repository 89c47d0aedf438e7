package figma

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	figmaAPIBase = "https://api.figma.com/v1"

	// Version is the release of the figma-tokens module.
	Version = "0.3.0"
)

// API is the read-only subset of the Figma REST API used to extract design tokens.
// Client and CachedClient implement it; tests substitute their own.
type API interface {
	GetFile(ctx context.Context, fileKey string) (*FileResponse, error)
	GetFileStyles(ctx context.Context, fileKey string) (*StylesResponse, error)
	GetFileNodes(ctx context.Context, fileKey string, ids []string) (*NodesResponse, error)
}

// Client is a Figma API client bound to a single personal access token.
// It is safe for concurrent use.
type Client struct {
	accessToken string
	baseURL     string
	httpClient  *http.Client
	attempts    int
	backoff     time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API root, e.g. an httptest server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithRetries enables retrying on 429 and 5xx responses and on transport errors.
// attempts is the total number of tries; the wait before try N is (N-1)*backoff.
func WithRetries(attempts int, backoff time.Duration) Option {
	return func(c *Client) {
		if attempts < 1 {
			attempts = 1
		}
		c.attempts = attempts
		c.backoff = backoff
	}
}

// NewClient creates a new Figma API client with the provided personal access token.
// By default every request is tried once and no timeout is set; callers bound
// requests through the context they pass in.
func NewClient(accessToken string, opts ...Option) *Client {
	// Configure transport for better handling of large files
	transport := &http.Transport{
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		MaxIdleConnsPerHost: 10,
		// Disable HTTP/2 to avoid stream errors with large files
		ForceAttemptHTTP2: false,
	}

	c := &Client{
		accessToken: accessToken,
		baseURL:     figmaAPIBase,
		httpClient:  &http.Client{Transport: transport},
		attempts:    1,
		backoff:     2 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// GetFile retrieves the complete file, including its document tree.
func (c *Client) GetFile(ctx context.Context, fileKey string) (*FileResponse, error) {
	var fileResp FileResponse
	if err := c.get(ctx, "/files/"+url.PathEscape(fileKey), nil, &fileResp); err != nil {
		return nil, err
	}
	return &fileResp, nil
}

// GetFileStyles retrieves the metadata of every style published from the file.
func (c *Client) GetFileStyles(ctx context.Context, fileKey string) (*StylesResponse, error) {
	var stylesResp StylesResponse
	if err := c.get(ctx, "/files/"+url.PathEscape(fileKey)+"/styles", nil, &stylesResp); err != nil {
		return nil, err
	}
	return &stylesResp, nil
}

// GetFileNodes retrieves the given nodes in one batch request.
// Duplicate IDs are sent once. An empty ID list makes no request.
func (c *Client) GetFileNodes(ctx context.Context, fileKey string, ids []string) (*NodesResponse, error) {
	ids = deduplicateNodeIDs(ids)
	if len(ids) == 0 {
		return &NodesResponse{Nodes: map[string]*NodeData{}}, nil
	}

	query := url.Values{}
	query.Set("ids", strings.Join(ids, ","))

	var nodesResp NodesResponse
	if err := c.get(ctx, "/files/"+url.PathEscape(fileKey)+"/nodes", query, &nodesResp); err != nil {
		return nil, err
	}
	if nodesResp.Nodes == nil {
		nodesResp.Nodes = map[string]*NodeData{}
	}
	return &nodesResp, nil
}

// get performs a GET request against the API and decodes the JSON body into out.
// 429 and 5xx responses are retried when the client was built WithRetries.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var lastErr error
	for attempt := 1; attempt <= c.attempts; attempt++ {
		if attempt > 1 {
			select {
			case <-time.After(time.Duration(attempt-1) * c.backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		body, err := c.do(ctx, endpoint)
		if err == nil {
			if err := json.Unmarshal(body, out); err != nil {
				return fmt.Errorf("failed to parse response from %s: %w", path, err)
			}
			return nil
		}

		lastErr = err
		if ctx.Err() != nil || !retryable(err) {
			return err
		}
	}

	return lastErr
}

func (c *Client) do(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-Figma-Token", c.accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	return body, nil
}
