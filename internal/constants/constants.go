package constants

import "time"

// API endpoint and query parameters.
const (
	// DefaultBaseURL is the root of the FBI UCR API on api.usa.gov.
	DefaultBaseURL = "https://api.usa.gov/crime/fbi/sapi/api"

	// QueryAPIKey is the query parameter carrying the api.data.gov key.
	QueryAPIKey = "api_key"

	// QueryPage is the query parameter selecting a zero-based results page.
	QueryPage = "page"

	// DefaultUserAgent is sent when no User-Agent is configured.
	DefaultUserAgent = "ucr-client-go"
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// HTTP status codes commonly used.
const (
	// HTTPStatusOK represents a successful HTTP response.
	HTTPStatusOK = 200

	// HTTPStatusMultipleChoices is the first status outside the success range.
	HTTPStatusMultipleChoices = 300
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"
)

// Format constants.
const (
	// FormatTable for table output format.
	FormatTable = "table"

	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatMarkdown for Markdown output format.
	FormatMarkdown = "markdown"

	// JSONIndentSize is the number of spaces for JSON indentation.
	JSONIndentSize = 2
)

// Application naming.
const (
	// AppName is used for the binary, config directory and env prefix.
	AppName = "ucr"

	// ConfigFileName is the config file name inside the config directory.
	ConfigFileName = "config.yml"
)
