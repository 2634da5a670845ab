package client

import (
	"strings"

	"github.com/fivetwenty-io/ucr-client/internal/constants"
	"github.com/fivetwenty-io/ucr-client/internal/http"
	"github.com/fivetwenty-io/ucr-client/pkg/ucr"
)

// Client implements the ucr.Client interface.
type Client struct {
	httpClient *http.Client
	builder    *Builder
	baseURL    string
	logger     ucr.Logger
	strict     bool
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *ucr.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	return httpOpts
}

// New creates a new UCR API client. The API key and the strict flag are
// fixed for the lifetime of the client.
func New(config *ucr.Config) (*Client, error) {
	if strings.TrimSpace(config.APIKey) == "" {
		return nil, ucr.ErrAPIKeyRequired
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	httpClient := http.NewClient(baseURL, createHTTPClientOptions(config)...)

	return &Client{
		httpClient: httpClient,
		builder:    NewBuilder(httpClient, config.APIKey),
		baseURL:    baseURL,
		logger:     config.Logger,
		strict:     !config.SkipArgumentChecks,
	}, nil
}

// Builder returns the request builder used by this client.
func (c *Client) Builder() *Builder {
	return c.builder
}

// StrictChecking reports whether Invoke checks argument counts.
func (c *Client) StrictChecking() bool {
	return c.strict
}

// loggerAdapter adapts ucr.Logger to http.Logger.
type loggerAdapter struct {
	logger ucr.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
