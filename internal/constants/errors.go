package constants

import "errors"

// Configuration errors.
var (
	ErrMissingBaseURL   = errors.New("base URL is required")
	ErrMissingDBName    = errors.New("database name is required")
	ErrMissingUID       = errors.New("user id is required")
	ErrMissingPassword  = errors.New("password is required")
	ErrUnknownConfigKey = errors.New("unknown configuration key")
)

// Command errors.
var (
	ErrInvalidJSONArgs   = errors.New("positional arguments must be a JSON array")
	ErrInvalidJSONKwargs = errors.New("keyword arguments must be a JSON object")
	ErrUnsupportedOutput = errors.New("unsupported output format")
	ErrTrailingJSONData  = errors.New("unexpected data after JSON value")
)
