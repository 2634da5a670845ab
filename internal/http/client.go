package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/fivetwenty-io/ucr-client/internal/constants"
	"github.com/fivetwenty-io/ucr-client/pkg/ucr"
	"github.com/hashicorp/go-retryablehttp"
)

// Logger is the logging surface used by the HTTP layer.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request describes one API call relative to the base URL.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Headers map[string]string
}

// Response is the raw response of a completed call.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client performs single-attempt requests against the API.
type Client struct {
	baseURL    string
	httpClient *retryablehttp.Client
	logger     Logger
	debug      bool
	userAgent  string
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request and response logging.
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

// WithTimeout bounds every request.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// NewClient creates a client for baseURL. Requests are never retried.
func NewClient(baseURL string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.CheckRetry = singleAttemptPolicy
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout

	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: retryClient,
		userAgent:  constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// singleAttemptPolicy never asks for a retry; it only surfaces context errors.
func singleAttemptPolicy(ctx context.Context, _ *http.Response, _ error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	return false, nil
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
	})
}

// Do executes the request. A non-2xx status returns both the response and a
// *ucr.TransportError.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", RedactError(err))
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	c.logDebug("HTTP Request", map[string]interface{}{
		"method": req.Method,
		"path":   req.Path,
		"query":  RedactQuery(req.Query),
	})

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &ucr.TransportError{
			Method: req.Method,
			Path:   req.Path,
			Err:    RedactError(err),
		}
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &ucr.TransportError{
			Method:     req.Method,
			Path:       req.Path,
			StatusCode: httpResp.StatusCode,
			Err:        fmt.Errorf("reading response body: %w", err),
		}
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	c.logDebug("HTTP Response", map[string]interface{}{
		"method":      req.Method,
		"path":        req.Path,
		"status_code": resp.StatusCode,
		"bytes":       len(body),
	})

	if resp.StatusCode < constants.HTTPStatusOK || resp.StatusCode >= constants.HTTPStatusMultipleChoices {
		transportErr := &ucr.TransportError{
			Method:     req.Method,
			Path:       req.Path,
			StatusCode: resp.StatusCode,
			Body:       body,
		}

		apiErr, parseErr := ucr.ParseAPIError(body)
		if parseErr == nil {
			transportErr.API = apiErr
		}

		return resp, transportErr
	}

	return resp, nil
}

func (c *Client) logDebug(msg string, fields map[string]interface{}) {
	if c.debug && c.logger != nil {
		c.logger.Debug(msg, fields)
	}
}

// RedactQuery encodes query like url.Values.Encode with the API key masked.
func RedactQuery(query url.Values) string {
	if len(query) == 0 {
		return ""
	}

	keys := make([]string, 0, len(query))
	for key := range query {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	var builder strings.Builder

	for _, key := range keys {
		for _, value := range query[key] {
			if builder.Len() > 0 {
				builder.WriteByte('&')
			}

			builder.WriteString(url.QueryEscape(key))
			builder.WriteByte('=')

			if key == constants.QueryAPIKey {
				builder.WriteString(constants.MaskedSecret)
			} else {
				builder.WriteString(url.QueryEscape(value))
			}
		}
	}

	return builder.String()
}

// RedactURL masks the API key in a raw URL.
func RedactURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.RawQuery == "" {
		return rawURL
	}

	parsed.RawQuery = RedactQuery(parsed.Query())

	return parsed.String()
}

// RedactError masks the API key carried in the URL of a *url.Error.
func RedactError(err error) error {
	urlErr := &url.Error{}
	if errors.As(err, &urlErr) {
		return &url.Error{
			Op:  urlErr.Op,
			URL: RedactURL(urlErr.URL),
			Err: urlErr.Err,
		}
	}

	return err
}
