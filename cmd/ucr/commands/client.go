package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/fivetwenty-io/ucr-client/internal/constants"
	"github.com/fivetwenty-io/ucr-client/pkg/ucr"
	"github.com/fivetwenty-io/ucr-client/pkg/ucrclient"
	"github.com/spf13/viper"
)

// buildClientConfig assembles a ucr.Config from flags, environment and the
// config file. Logs go to logOutput.
func buildClientConfig(logOutput io.Writer) (*ucr.Config, error) {
	apiKey := strings.TrimSpace(viper.GetString(KeyAPIKey))
	if apiKey == "" {
		return nil, constants.ErrNoAPIKeyConfigured
	}

	verbose := viper.GetBool(KeyVerbose)

	return &ucr.Config{
		APIKey:             apiKey,
		SkipArgumentChecks: !viper.GetBool(KeyStrict),
		BaseURL:            viper.GetString(KeyBaseURL),
		HTTPTimeout:        viper.GetDuration(KeyTimeout),
		Debug:              verbose,
		Logger:             NewLogger(logOutput, verbose),
	}, nil
}

// CreateClient creates a UCR client from the current CLI configuration.
func CreateClient(logOutput io.Writer) (ucr.Client, error) {
	config, err := buildClientConfig(logOutput)
	if err != nil {
		return nil, err
	}

	client, err := ucrclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}
