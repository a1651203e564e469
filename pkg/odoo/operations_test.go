package odoo_test

import (
	"testing"

	"github.com/fivetwenty-io/odoo-client/pkg/odoo"
	"github.com/stretchr/testify/assert"
)

func TestOperations(t *testing.T) {
	t.Parallel()

	expected := []string{
		"write", "create", "read", "search",
		"search_count", "search_read", "fields_get", "unlink",
	}

	ops := odoo.Operations()
	got := make([]string, 0, len(ops))

	for _, op := range ops {
		assert.True(t, op.Valid(), op.String())
		got = append(got, op.String())
	}

	assert.Equal(t, expected, got)
}

func TestOperations_ReturnsCopy(t *testing.T) {
	t.Parallel()

	ops := odoo.Operations()
	ops[0] = odoo.Operation("copy")

	assert.Equal(t, odoo.OperationWrite, odoo.Operations()[0])
}

func TestOperation_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		op       odoo.Operation
		expected bool
	}{
		{odoo.OperationSearchRead, true},
		{odoo.Operation("unlink"), true},
		{odoo.Operation(""), false},
		{odoo.Operation("SEARCH"), false},
		{odoo.Operation("name_get"), false},
		{odoo.Operation("execute_kw"), false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.op.Valid(), "operation %q", tt.op)
	}
}
