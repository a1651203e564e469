package odoo_test

import (
	"context"
	"testing"

	"github.com/fivetwenty-io/odoo-client/pkg/odoo"
	"github.com/fivetwenty-io/odoo-client/pkg/xmlrpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type modelMethod func(m *odoo.Model, ctx context.Context, args []interface{}, kwargs map[string]interface{}) (interface{}, error)

var modelMethods = map[odoo.Operation]modelMethod{
	odoo.OperationWrite:       (*odoo.Model).Write,
	odoo.OperationCreate:      (*odoo.Model).Create,
	odoo.OperationRead:        (*odoo.Model).Read,
	odoo.OperationSearch:      (*odoo.Model).Search,
	odoo.OperationSearchCount: (*odoo.Model).SearchCount,
	odoo.OperationSearchRead:  (*odoo.Model).SearchRead,
	odoo.OperationFieldsGet:   (*odoo.Model).FieldsGet,
	odoo.OperationUnlink:      (*odoo.Model).Unlink,
}

func TestNewModel(t *testing.T) {
	t.Parallel()

	api, _ := newTestAPI(t)

	partner := odoo.NewModel(api, "res.partner")
	assert.Equal(t, "res.partner", partner.Name())
	assert.Equal(t, partner, api.Model("res.partner"))
}

func TestModel_Search(t *testing.T) {
	t.Parallel()

	api, transport := newTestAPI(t)
	partner := odoo.NewModel(api, "res.partner")
	domain := []interface{}{[]interface{}{[]interface{}{"is_company", "=", true}}}

	expectExecute(transport, "res.partner", odoo.OperationSearch, domain, map[string]interface{}{}).Return([]interface{}{int64(7)}, nil)

	result, err := partner.Search(context.Background(), domain, nil)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{int64(7)}, result)
}

func TestModel_EquivalentToAPI(t *testing.T) {
	t.Parallel()

	require.Len(t, modelMethods, len(odoo.Operations()))

	for _, op := range odoo.Operations() {
		op := op

		t.Run(op.String(), func(t *testing.T) {
			t.Parallel()

			api, transport := newTestAPI(t)
			partner := api.Model("res.partner")
			args := []interface{}{[]interface{}{1}}
			kwargs := map[string]interface{}{"context": map[string]interface{}{"lang": "en_US"}}

			transport.On("Call", mock.Anything, "execute_kw", mock.Anything).Return(true, nil).Times(4)

			_, err := apiMethods[op](api, context.Background(), "res.partner", args, kwargs)
			require.NoError(t, err)

			_, err = modelMethods[op](partner, context.Background(), args, kwargs)
			require.NoError(t, err)

			_, err = apiMethods[op](api, context.Background(), "res.partner", args, nil)
			require.NoError(t, err)

			_, err = modelMethods[op](partner, context.Background(), args, nil)
			require.NoError(t, err)

			require.Len(t, transport.Calls, 4)
			assert.Equal(t, transport.Calls[0].Arguments[1:], transport.Calls[1].Arguments[1:])
			assert.Equal(t, transport.Calls[2].Arguments[1:], transport.Calls[3].Arguments[1:])

			params, ok := transport.Calls[1].Arguments[2].([]interface{})
			require.True(t, ok)
			assert.Equal(t, "res.partner", params[3])
			assert.Equal(t, op.String(), params[4])
		})
	}
}

func TestModel_PropagatesErrors(t *testing.T) {
	t.Parallel()

	api, transport := newTestAPI(t)
	partner := api.Model("res.partner")

	expectExecute(transport, "res.partner", odoo.OperationCreate, nil, map[string]interface{}{}).
		Return(nil, &xmlrpc.Fault{Code: 1, String: "null value in column \"name\""})

	_, err := partner.Create(context.Background(), nil, nil)
	assert.EqualError(t, err, "null value in column \"name\"")
}
