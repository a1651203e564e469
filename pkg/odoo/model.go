package odoo

import "context"

// Model binds an API to one model name so operations can be called without
// repeating it. The API is shared, not owned.
type Model struct {
	api  *API
	name string
}

// NewModel returns a handle for the model called name.
func NewModel(api *API, name string) *Model {
	return &Model{api: api, name: name}
}

// Name returns the bound model name.
func (m *Model) Name() string {
	return m.name
}

// Write calls API.Write on the bound model.
func (m *Model) Write(ctx context.Context, args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	return m.api.Write(ctx, m.name, args, kwargs)
}

// Create calls API.Create on the bound model.
func (m *Model) Create(ctx context.Context, args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	return m.api.Create(ctx, m.name, args, kwargs)
}

// Read calls API.Read on the bound model.
func (m *Model) Read(ctx context.Context, args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	return m.api.Read(ctx, m.name, args, kwargs)
}

// Search calls API.Search on the bound model.
func (m *Model) Search(ctx context.Context, args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	return m.api.Search(ctx, m.name, args, kwargs)
}

// SearchCount calls API.SearchCount on the bound model.
func (m *Model) SearchCount(ctx context.Context, args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	return m.api.SearchCount(ctx, m.name, args, kwargs)
}

// SearchRead calls API.SearchRead on the bound model.
func (m *Model) SearchRead(ctx context.Context, args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	return m.api.SearchRead(ctx, m.name, args, kwargs)
}

// FieldsGet calls API.FieldsGet on the bound model.
func (m *Model) FieldsGet(ctx context.Context, args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	return m.api.FieldsGet(ctx, m.name, args, kwargs)
}

// Unlink calls API.Unlink on the bound model.
func (m *Model) Unlink(ctx context.Context, args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	return m.api.Unlink(ctx, m.name, args, kwargs)
}
