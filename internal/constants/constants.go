package constants

import "time"

// API endpoint defaults.
const (
	// DefaultBaseURL is the production NCM API endpoint.
	DefaultBaseURL = "https://www.cradlepointecm.com/api/v2"

	// EnvBaseURL is the environment variable consulted when no base URL
	// is configured.
	EnvBaseURL = "CP_BASE_URL"
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

	// ExtendedHTTPTimeout is used for longer operations such as group
	// configuration pushes.
	ExtendedHTTPTimeout = 45 * time.Second
)

// Retry limits.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 5

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Display and output constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for tabular output format.
	FormatTable = "table"

	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"

	// JSONIndentSize is the number of spaces for JSON indentation.
	JSONIndentSize = 2

	// StringTruncationLength is the default length for truncating strings
	// in table cells.
	StringTruncationLength = 60
)

// Command argument counts.
const (
	// TwoArgumentsRequired indicates commands requiring exactly 2 arguments.
	TwoArgumentsRequired = 2
)

// Date-window helpers.
const (
	// TimestampLayout is the wire layout of created_at window boundaries.
	TimestampLayout = "2006-01-02T15:04:05"

	// DateLayout is the layout callers use to name a calendar day.
	DateLayout = "2006-01-02"
)
