package constants

import "os"

// Remote object service.
const (
	// ObjectEndpointPath is appended to the base URL to reach the object service.
	ObjectEndpointPath = "/xmlrpc/2/object"

	// ExecuteMethod is the remote procedure every model operation is routed through.
	ExecuteMethod = "execute_kw"

	// XMLContentType is sent with every remote procedure call.
	XMLContentType = "text/xml"

	// DefaultUserAgent identifies the client when no override is configured.
	DefaultUserAgent = "odoo-client/go"
)

// Environment variables read by odoo.NewFromEnv and the CLI.
const (
	EnvBaseURL  = "ODOO_BASE_URL"
	EnvDBName   = "ODOO_DB_NAME"
	EnvUID      = "ODOO_API_UID"
	EnvPassword = "ODOO_API_PASSWORD"
	EnvLogLevel = "LOG_LEVEL"

	// EnvPrefix is the viper prefix, so "base_url" resolves to ODOO_BASE_URL.
	EnvPrefix = "ODOO"
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm os.FileMode = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm os.FileMode = 0600
)

// Configuration layout.
const (
	// ConfigDirName is created under the user's home directory.
	ConfigDirName = ".odoo"

	// ConfigFileName is the config file base name (without extension).
	ConfigFileName = "config"

	// ConfigFileType is the viper config type.
	ConfigFileType = "yml"

	// DefaultLogLevel matches the level used when LOG_LEVEL is unset.
	DefaultLogLevel = "ERROR"
)

// Format constants.
const (
	// FormatTable for table output format.
	FormatTable = "table"

	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"
)

// UI and display constants.
const (
	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"

	// None is used when no value is present.
	None = "none"
)

// Validation and limits.
const (
	// MinimumArgumentCount is the minimum number of command line arguments.
	MinimumArgumentCount = 2
)
