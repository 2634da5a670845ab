package commands

import (
	"errors"
	"strings"

	"github.com/fivetwenty-io/ucr-client/internal/constants"
	"github.com/spf13/viper"
)

// Viper keys shared by the root command, the config file and the environment.
const (
	KeyConfig  = "config"
	KeyAPIKey  = "api_key"
	KeyBaseURL = "base_url"
	KeyStrict  = "strict"
	KeyOutput  = "output"
	KeyVerbose = "verbose"
	KeyTimeout = "timeout"
)

// Common static errors used throughout the commands package.
var (
	ErrMethodRequired = errors.New("method name is required")
)

// outputFormat returns the selected output format, defaulting to table.
func outputFormat() (string, error) {
	format := strings.ToLower(strings.TrimSpace(viper.GetString(KeyOutput)))
	switch format {
	case "":
		return constants.FormatTable, nil
	case constants.FormatTable, constants.FormatJSON, constants.FormatYAML, constants.FormatMarkdown:
		return format, nil
	default:
		return "", &unsupportedFormatError{format: format}
	}
}

type unsupportedFormatError struct {
	format string
}

func (e *unsupportedFormatError) Error() string {
	return constants.ErrUnsupportedOutputFormat.Error() + ": " + e.format
}

func (e *unsupportedFormatError) Unwrap() error {
	return constants.ErrUnsupportedOutputFormat
}

// usageFor renders positional parameters for a cobra Use line; optional
// parameters are bracketed.
func usageFor(params []string, minArgs int) string {
	parts := make([]string, len(params))
	for i, param := range params {
		name := strings.ToUpper(param)
		if i >= minArgs {
			name = "[" + name + "]"
		}

		parts[i] = name
	}

	return strings.Join(parts, " ")
}
