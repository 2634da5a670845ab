package constants

import "errors"

// Configuration errors.
var (
	ErrNoAPIKeyConfigured = errors.New("no API key configured, use 'ucr configure' or set UCR_API_KEY")
	ErrEmptyAPIKey        = errors.New("API key must not be empty")
)

// Validation errors.
var (
	ErrUnsupportedOutputFormat = errors.New("unsupported output format")
	ErrUnknownConfigKey        = errors.New("unknown configuration key")
)
