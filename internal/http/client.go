// Package http implements the request dispatch layer: URL assembly, auth
// header attachment, JSON body encoding, and success/failure classification.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/fivetwenty-io/spotify/internal/auth"
	"github.com/fivetwenty-io/spotify/internal/constants"
	"github.com/fivetwenty-io/spotify/pkg/spotify"
)

// Logger interface for transport diagnostics.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request represents one API request.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response represents one API response with the body fully read.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client executes API requests against a base URL, attaching a fresh bearer
// token per call. The zero number of retries means a failed call is terminal.
type Client struct {
	baseURL      string
	tokenManager auth.TokenManager
	httpClient   *retryablehttp.Client
	logger       Logger
	debug        bool
	userAgent    string
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the diagnostics logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig enables retries of 429 and 5xx responses. Retries are off
// by default.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// NewClient creates a new API client. A nil token manager sends
// unauthenticated requests, which is only useful in tests.
func NewClient(baseURL string, tokenManager auth.TokenManager, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	// Once retries are exhausted the final response must come back as-is;
	// the default handler would replace a 429/5xx with a give-up error and
	// the status and body would never reach the classification in Do.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout

	client := &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		tokenManager: tokenManager,
		httpClient:   retryClient,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do executes a request. A 2xx response is returned with a nil error; any
// other status returns the response together with the parsed *spotify.APIError
// and logs the status and raw body. Transport failures return a nil response.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := req.Path
	if !strings.HasPrefix(fullURL, "http") {
		fullURL = c.baseURL + "/" + strings.TrimPrefix(req.Path, "/")
	}

	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	// The remote service expects a JSON body on every call, including GET
	// and DELETE, so an absent payload is sent as an empty object.
	payload := req.Body
	if payload == nil {
		payload = struct{}{}
	}

	bodyBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshaling request body: %w", err)
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, bodyBytes)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	// The token is obtained fresh on every call; any caching lives inside
	// the token manager.
	if c.tokenManager != nil {
		token, err := c.tokenManager.GetToken(ctx)
		if err != nil {
			return nil, fmt.Errorf("getting access token: %w", err)
		}

		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status": httpResp.StatusCode,
			"url":    fullURL,
		})
	}

	if httpResp.StatusCode >= 200 && httpResp.StatusCode < 300 {
		return resp, nil
	}

	if c.logger != nil {
		c.logger.Error("request failed", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
			"status": httpResp.StatusCode,
			"body":   string(body),
		})
	}

	return resp, spotify.ParseAPIError(httpResp.StatusCode, body)
}

// Get executes a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post executes a POST request.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put executes a PUT request.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Delete executes a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}
