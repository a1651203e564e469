package odoo_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fivetwenty-io/odoo-client/pkg/odoo"
	"github.com/stretchr/testify/assert"
)

func TestAPIError_Error(t *testing.T) {
	t.Parallel()

	err := odoo.NewAPIError("Invalid operation", nil)
	assert.Equal(t, "Invalid operation", err.Error())
	assert.Equal(t, "Invalid operation", fmt.Sprint(err))
	assert.Nil(t, err.Unwrap())
}

func TestAPIError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("underlying")
	err := odoo.NewAPIError("described", cause)

	assert.Equal(t, "described", err.Error())
	assert.True(t, errors.Is(err, cause))

	wrapped := fmt.Errorf("searching partners: %w", err)

	var apiErr *odoo.APIError
	assert.True(t, errors.As(wrapped, &apiErr))
	assert.Equal(t, "described", apiErr.Description)
}
