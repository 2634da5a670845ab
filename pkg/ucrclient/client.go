package ucrclient

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/ucr-client/internal/client"
	"github.com/fivetwenty-io/ucr-client/internal/constants"
	"github.com/fivetwenty-io/ucr-client/pkg/ucr"
)

// New creates a new UCR API client. The config is copied; later changes to
// it do not affect the client.
func New(config *ucr.Config) (ucr.Client, error) {
	if config == nil {
		return nil, ucr.ErrConfigRequired
	}

	if strings.TrimSpace(config.APIKey) == "" {
		return nil, ucr.ErrAPIKeyRequired
	}

	normalized := *config
	normalized.BaseURL = normalizeBaseURL(config.BaseURL)

	if normalized.HTTPTimeout <= 0 {
		normalized.HTTPTimeout = constants.DefaultHTTPTimeout
	}

	c, err := client.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// NewWithAPIKey creates a client for the default endpoint. strict controls
// the arity check of Invoke.
func NewWithAPIKey(apiKey string, strict bool) (ucr.Client, error) {
	return New(&ucr.Config{
		APIKey:             apiKey,
		SkipArgumentChecks: !strict,
	})
}

func normalizeBaseURL(baseURL string) string {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return constants.DefaultBaseURL
	}

	baseURL = strings.TrimSuffix(baseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	return baseURL
}
