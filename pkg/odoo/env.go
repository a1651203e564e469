package odoo

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/odoo-client/internal/constants"
	"github.com/hashicorp/go-multierror"
)

// NewFromEnv creates an API from ODOO_BASE_URL, ODOO_DB_NAME, ODOO_API_UID and
// ODOO_API_PASSWORD. A numeric ODOO_API_UID is sent as an integer. Every
// missing variable is reported in the returned error.
func NewFromEnv(opts ...Option) (*API, error) {
	baseURL := strings.TrimSpace(os.Getenv(constants.EnvBaseURL))
	database := strings.TrimSpace(os.Getenv(constants.EnvDBName))
	rawUID := strings.TrimSpace(os.Getenv(constants.EnvUID))
	password := os.Getenv(constants.EnvPassword)

	var result *multierror.Error

	if baseURL == "" {
		result = multierror.Append(result, fmt.Errorf("%s: %w", constants.EnvBaseURL, constants.ErrMissingBaseURL))
	}

	if database == "" {
		result = multierror.Append(result, fmt.Errorf("%s: %w", constants.EnvDBName, constants.ErrMissingDBName))
	}

	if rawUID == "" {
		result = multierror.Append(result, fmt.Errorf("%s: %w", constants.EnvUID, constants.ErrMissingUID))
	}

	if password == "" {
		result = multierror.Append(result, fmt.Errorf("%s: %w", constants.EnvPassword, constants.ErrMissingPassword))
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	return NewAPI(baseURL, database, ParseUID(rawUID), password, opts...), nil
}

// ParseUID returns raw as an int when it is numeric and unchanged otherwise.
func ParseUID(raw string) interface{} {
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}

	return raw
}
