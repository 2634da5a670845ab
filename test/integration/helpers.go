//go:build integration

package integration

import (
	"os"
	"testing"

	"github.com/fivetwenty-io/ucr-client/pkg/ucr"
	"github.com/fivetwenty-io/ucr-client/pkg/ucrclient"
	"github.com/stretchr/testify/require"
)

// TestConfig holds configuration for integration tests.
type TestConfig struct {
	APIKey  string
	BaseURL string
}

// LoadTestConfig loads configuration from environment variables.
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		APIKey:  os.Getenv("UCR_API_KEY"),
		BaseURL: os.Getenv("UCR_BASE_URL"),
	}
}

// SkipIfMissingConfig skips the test when no API key is available.
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.APIKey == "" {
		t.Skip("UCR_API_KEY not set, skipping integration test")
	}
}

// NewClient creates a client against the live API.
func (config *TestConfig) NewClient(t *testing.T, strict bool) ucr.Client {
	t.Helper()

	client, err := ucrclient.New(&ucr.Config{
		APIKey:             config.APIKey,
		BaseURL:            config.BaseURL,
		SkipArgumentChecks: !strict,
	})
	require.NoError(t, err)

	return client
}
