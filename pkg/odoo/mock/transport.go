// Package mock provides a testify-based odoo.Transport for tests.
package mock

import (
	"context"

	"github.com/fivetwenty-io/odoo-client/pkg/odoo"
	"github.com/stretchr/testify/mock"
)

// Transport records remote procedure calls. Expectations are set with On:
//
//	transport.On("Call", mock.Anything, "execute_kw", params).Return(result, nil)
type Transport struct {
	mock.Mock
}

var _ odoo.Transport = (*Transport)(nil)

// New returns a Transport with no expectations.
func New() *Transport {
	return &Transport{}
}

// Call implements odoo.Transport.
func (t *Transport) Call(ctx context.Context, method string, params []interface{}) (interface{}, error) {
	args := t.Called(ctx, method, params)

	return args.Get(0), args.Error(1)
}

// ExecuteParams builds the parameter list API.Call sends for one operation.
func ExecuteParams(
	database string,
	uid interface{},
	password string,
	model string,
	operation odoo.Operation,
	args []interface{},
	kwargs map[string]interface{},
) []interface{} {
	return []interface{}{database, uid, password, model, operation.String(), args, kwargs}
}
