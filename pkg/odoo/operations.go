package odoo

// Operation is one of the fixed model methods reachable through the API.
// Its value is the method name sent on the wire.
type Operation string

// Allowed operations.
const (
	OperationWrite       Operation = "write"
	OperationCreate      Operation = "create"
	OperationRead        Operation = "read"
	OperationSearch      Operation = "search"
	OperationSearchCount Operation = "search_count"
	OperationSearchRead  Operation = "search_read"
	OperationFieldsGet   Operation = "fields_get"
	OperationUnlink      Operation = "unlink"
)

var operations = []Operation{
	OperationWrite,
	OperationCreate,
	OperationRead,
	OperationSearch,
	OperationSearchCount,
	OperationSearchRead,
	OperationFieldsGet,
	OperationUnlink,
}

// Operations returns every allowed operation in declaration order.
func Operations() []Operation {
	out := make([]Operation, len(operations))
	copy(out, operations)

	return out
}

// String returns the wire value.
func (o Operation) String() string {
	return string(o)
}

// Valid reports whether o is one of the allowed operations.
func (o Operation) Valid() bool {
	for _, op := range operations {
		if op == o {
			return true
		}
	}

	return false
}
