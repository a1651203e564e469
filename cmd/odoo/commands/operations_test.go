package commands

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/fivetwenty-io/odoo-client/internal/constants"
	"github.com/fivetwenty-io/odoo-client/pkg/odoo"
	odoomock "github.com/fivetwenty-io/odoo-client/pkg/odoo/mock"
	"github.com/fivetwenty-io/odoo-client/pkg/xmlrpc"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// useMockAPI routes the commands to an API backed by a mock transport.
func useMockAPI(t *testing.T) *odoomock.Transport {
	t.Helper()

	transport := odoomock.New()
	previous := apiFactory

	apiFactory = func(io.Writer) (*odoo.API, error) {
		return odoo.NewAPI("http://odoo.test:8069", "db", 2, "pw", odoo.WithTransport(transport)), nil
	}

	viper.Set("output", constants.FormatJSON)

	t.Cleanup(func() {
		apiFactory = previous

		viper.Reset()
		transport.AssertExpectations(t)
	})

	return transport
}

func execute(cmd *cobra.Command, args ...string) (string, error) {
	var out, errOut bytes.Buffer

	if args == nil {
		args = []string{}
	}

	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestNewOperationCommands(t *testing.T) {
	cmds := NewOperationCommands()
	require.Len(t, cmds, len(odoo.Operations()))

	names := make([]string, 0, len(cmds))
	for _, cmd := range cmds {
		names = append(names, cmd.Name())
		assert.NotEmpty(t, cmd.Short, cmd.Name())
		assert.NotNil(t, cmd.Flags().Lookup("kwargs"), cmd.Name())
	}

	assert.Equal(t, []string{
		"write", "create", "read", "search",
		"search-count", "search-read", "fields-get", "unlink",
	}, names)

	assert.Equal(t, []string{"search_read"}, cmds[5].Aliases)
	assert.Empty(t, cmds[0].Aliases)
}

func TestOperationCommand_Search(t *testing.T) {
	transport := useMockAPI(t)

	params := odoomock.ExecuteParams("db", 2, "pw", "res.partner", odoo.OperationSearch,
		[]interface{}{[]interface{}{[]interface{}{"is_company", "=", true}}},
		map[string]interface{}{},
	)
	transport.On("Call", mock.Anything, "execute_kw", params).
		Return([]interface{}{int64(7), int64(9)}, nil).Once()

	out, err := execute(newOperationCommand(odoo.OperationSearch), "res.partner", `[[["is_company","=",true]]]`)
	require.NoError(t, err)
	assert.JSONEq(t, `[7, 9]`, out)
}

func TestOperationCommand_SearchReadWithKwargs(t *testing.T) {
	transport := useMockAPI(t)

	params := odoomock.ExecuteParams("db", 2, "pw", "res.partner", odoo.OperationSearchRead,
		[]interface{}{[]interface{}{}},
		map[string]interface{}{"fields": []interface{}{"name"}, "limit": 5},
	)
	transport.On("Call", mock.Anything, "execute_kw", params).
		Return([]interface{}{map[string]interface{}{"id": int64(7), "name": "Azure Interior"}}, nil).Once()

	out, err := execute(newOperationCommand(odoo.OperationSearchRead),
		"res.partner", "[[]]", "--kwargs", `{"fields":["name"],"limit":5}`)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id": 7, "name": "Azure Interior"}]`, out)
}

func TestOperationCommand_FieldsGetWithoutArgs(t *testing.T) {
	transport := useMockAPI(t)

	params := odoomock.ExecuteParams("db", 2, "pw", "res.partner", odoo.OperationFieldsGet,
		[]interface{}{}, map[string]interface{}{})
	transport.On("Call", mock.Anything, "execute_kw", params).
		Return(map[string]interface{}{"name": map[string]interface{}{"type": "char"}}, nil).Once()

	out, err := execute(newOperationCommand(odoo.OperationFieldsGet), "res.partner")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": {"type": "char"}}`, out)
}

func TestOperationCommand_InvalidArgs(t *testing.T) {
	transport := useMockAPI(t)

	_, err := execute(newOperationCommand(odoo.OperationRead), "res.partner", `{"ids": [1]}`)
	assert.True(t, errors.Is(err, constants.ErrInvalidJSONArgs))
	transport.AssertNotCalled(t, "Call", mock.Anything, mock.Anything, mock.Anything)
}

func TestOperationCommand_RemoteFault(t *testing.T) {
	transport := useMockAPI(t)

	transport.On("Call", mock.Anything, "execute_kw", mock.Anything).
		Return(nil, &xmlrpc.Fault{Code: 2, String: "Record does not exist or has been deleted."}).Once()

	_, err := execute(newOperationCommand(odoo.OperationUnlink), "res.partner", "[[1]]")

	var apiErr *odoo.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Record does not exist or has been deleted.", err.Error())
}

func TestCallCommand(t *testing.T) {
	transport := useMockAPI(t)

	params := odoomock.ExecuteParams("db", 2, "pw", "res.partner", odoo.OperationSearchCount,
		[]interface{}{[]interface{}{}}, map[string]interface{}{})
	transport.On("Call", mock.Anything, "execute_kw", params).Return(int64(42), nil).Once()

	out, err := execute(NewCallCommand(), "search_count", "res.partner", "[[]]")
	require.NoError(t, err)
	assert.JSONEq(t, `42`, out)
}

func TestCallCommand_InvalidOperation(t *testing.T) {
	transport := useMockAPI(t)

	_, err := execute(NewCallCommand(), "name_get", "res.partner")
	require.Error(t, err)
	assert.Equal(t, "Invalid operation", err.Error())
	transport.AssertNotCalled(t, "Call", mock.Anything, mock.Anything, mock.Anything)
}

func TestCallCommand_RequiresModel(t *testing.T) {
	useMockAPI(t)

	_, err := execute(NewCallCommand(), "search")
	assert.Error(t, err)
}
