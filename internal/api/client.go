package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/shopipy/posctl/internal/errors"
	"github.com/shopipy/posctl/internal/log"
)

// Client is the POS backend API client
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
	logger     *log.Logger
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithLogger sets the logger used for request tracing
func WithLogger(l *log.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient creates a new POS API client
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: log.DefaultLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken sets the bearer token attached to authenticated requests
func (c *Client) SetToken(token string) {
	c.token = token
}

// Token returns the current bearer token
func (c *Client) Token() string {
	return c.token
}

// do performs an HTTP request with authentication. The query may be nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	c.logger.Debug("api request", "method", method, "path", path, "request_id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewRequestFailedError(fmt.Sprintf("%s %s", method, path), err)
	}

	return resp, nil
}

// errorResponse is the backend's error body
type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// errorMessage extracts the backend's error message from a non-success
// response body, falling back to the raw body.
func errorMessage(resp *http.Response) string {
	body, _ := io.ReadAll(resp.Body)

	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		if errResp.Message != "" {
			return errResp.Message
		}
		if errResp.Error != "" {
			return errResp.Error
		}
	}

	if len(body) > 0 {
		return string(body)
	}
	return fmt.Sprintf("request failed with status %d", resp.StatusCode)
}

// parseResponse decodes the response body into target. Non-2xx responses
// become RequestFailure errors carrying the backend's message.
func parseResponse(resp *http.Response, target any) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.New(errors.ErrCodeRequestFailed, errorMessage(resp))
	}

	if target != nil {
		if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
			return errors.Wrap(errors.ErrCodeDecodeFailed, "decode response body", err)
		}
	}

	return nil
}

// decodeJSON decodes a body the caller has already status-checked.
// The caller also owns closing the body.
func decodeJSON(resp *http.Response, target any) error {
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return errors.Wrap(errors.ErrCodeDecodeFailed, "decode response body", err)
	}
	return nil
}

// discardResponse drains a response where no body is expected, still
// reporting non-success statuses.
func discardResponse(resp *http.Response) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.New(errors.ErrCodeRequestFailed, errorMessage(resp))
	}

	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
