// Package odoo is a small client for Odoo's external API.
//
// # Overview
//
// API sends model operations to the server's object service
// ("<base URL>/xmlrpc/2/object") through the execute_kw remote procedure.
// Every call has the same shape:
//
//	execute_kw(database, uid, password, model, operation, args, kwargs)
//
// The set of operations is fixed (see Operation). Positional and keyword
// arguments are forwarded verbatim; shaping them is the caller's job.
//
// Getting a client
//
//	api := odoo.NewAPI("http://localhost:8069", "db", 2, "password")
//	partner := odoo.NewModel(api, "res.partner")
//
// # Usage
//
// List records matching a domain filter:
//
//	ids, err := partner.Search(ctx, []interface{}{
//	  []interface{}{[]interface{}{"is_company", "=", true}},
//	}, map[string]interface{}{"limit": 10})
//
// Count them instead of fetching them (search_count takes the same domain and
// no keyword arguments):
//
//	n, err := partner.SearchCount(ctx, domain, nil)
//
// Search and read in one round trip:
//
//	records, err := partner.SearchRead(ctx, domain, map[string]interface{}{
//	  "fields": []string{"name", "country_id", "comment"},
//	  "limit":  5,
//	})
//
// Inspect a model's fields:
//
//	fields, err := partner.FieldsGet(ctx, nil, map[string]interface{}{
//	  "attributes": []string{"string", "help", "type"},
//	})
//
// Create, update and delete:
//
//	id, err := partner.Create(ctx, []interface{}{map[string]interface{}{"name": "New Partner"}}, nil)
//	_, err = partner.Write(ctx, []interface{}{[]interface{}{id}, map[string]interface{}{"name": "Newer partner"}}, nil)
//	_, err = partner.Unlink(ctx, []interface{}{[]interface{}{id}}, nil)
//
// # Errors
//
// Invalid operations, remote faults and host name resolution failures are
// returned as *APIError, whose message is the bare description: "Invalid
// operation", the server's fault string, or "[Errno <code>] <message>". Other
// transport failures (refused connections, timeouts, non-200 responses,
// malformed bodies, canceled contexts) are returned unchanged.
//
// No call is retried and no timeout is applied; use the context or
// WithHTTPClient to bound calls.
//
// # Interceptors
//
// Request and response interceptors observe every valid operation:
//
//	metrics := odoo.NewMetricsCollector()
//	api := odoo.NewAPI(url, db, uid, password,
//	  odoo.WithResponseInterceptor(odoo.MetricsResponseInterceptor(metrics)),
//	)
package odoo
