package odoo

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/fivetwenty-io/odoo-client/internal/constants"
	"github.com/fivetwenty-io/odoo-client/pkg/xmlrpc"
)

// Transport invokes a named remote procedure with positional parameters and
// returns the decoded result. *xmlrpc.Client is the default implementation.
//
// Implementations report remote application faults as *xmlrpc.Fault and host
// name resolution failures as *xmlrpc.AddressError; API converts both into
// *APIError and passes every other error through untouched.
type Transport interface {
	Call(ctx context.Context, method string, params []interface{}) (interface{}, error)
}

type options struct {
	transport  Transport
	logger     Logger
	httpClient *http.Client
	userAgent  string
	debug      bool
	chain      *InterceptorChain
}

// Option configures an API.
type Option func(*options)

// WithTransport replaces the XML-RPC transport, e.g. with a mock.
func WithTransport(t Transport) Option {
	return func(o *options) {
		o.transport = t
	}
}

// WithLogger sets the logger used by the API and its HTTP transport.
func WithLogger(l Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithHTTPClient sets the HTTP client used by the default transport. No
// timeout is applied unless the client carries one.
func WithHTTPClient(h *http.Client) Option {
	return func(o *options) {
		o.httpClient = h
	}
}

// WithUserAgent overrides the User-Agent header sent by the default transport.
func WithUserAgent(ua string) Option {
	return func(o *options) {
		o.userAgent = ua
	}
}

// WithDebug enables a debug log line for every call.
func WithDebug(debug bool) Option {
	return func(o *options) {
		o.debug = debug
	}
}

// WithRequestInterceptor adds an interceptor run before every valid operation.
func WithRequestInterceptor(interceptor RequestInterceptor) Option {
	return func(o *options) {
		o.interceptors().AddRequestInterceptor(interceptor)
	}
}

// WithResponseInterceptor adds an interceptor run after every sent operation.
func WithResponseInterceptor(interceptor ResponseInterceptor) Option {
	return func(o *options) {
		o.interceptors().AddResponseInterceptor(interceptor)
	}
}

func (o *options) interceptors() *InterceptorChain {
	if o.chain == nil {
		o.chain = NewInterceptorChain()
	}

	return o.chain
}

// API executes model operations on an Odoo server through the external
// object service. Connection parameters are fixed at construction.
//
// An API is safe for concurrent use when its Transport is; the default
// XML-RPC transport is.
type API struct {
	baseURL  string
	database string
	uid      interface{}
	password string

	transport Transport
	logger    Logger
	debug     bool
	chain     *InterceptorChain
}

// NewAPI creates an API for the server at baseURL. The transport targets
// baseURL + "/xmlrpc/2/object"; nothing is validated or contacted until the
// first call. uid is sent as given.
func NewAPI(baseURL, database string, uid interface{}, password string, opts ...Option) *API {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	api := &API{
		baseURL:   baseURL,
		database:  database,
		uid:       uid,
		password:  password,
		transport: o.transport,
		logger:    o.logger,
		debug:     o.debug,
		chain:     o.chain,
	}

	if api.transport == nil {
		api.transport = xmlrpc.NewClient(baseURL+constants.ObjectEndpointPath, transportOptions(o)...)
	}

	return api
}

func transportOptions(o *options) []xmlrpc.Option {
	var xopts []xmlrpc.Option

	if o.httpClient != nil {
		xopts = append(xopts, xmlrpc.WithHTTPClient(o.httpClient))
	}

	if o.userAgent != "" {
		xopts = append(xopts, xmlrpc.WithUserAgent(o.userAgent))
	}

	if o.logger != nil && o.debug {
		xopts = append(xopts, xmlrpc.WithLogger(&loggerAdapter{logger: o.logger}))
	}

	return xopts
}

// BaseURL returns the server URL the API was created with.
func (a *API) BaseURL() string { return a.baseURL }

// Database returns the database name.
func (a *API) Database() string { return a.database }

// UID returns the user identifier as given to NewAPI.
func (a *API) UID() interface{} { return a.uid }

// Model returns a handle bound to the named model.
func (a *API) Model(name string) *Model {
	return NewModel(a, name)
}

// Call executes operation on model. args are passed by position and kwargs by
// keyword; a nil kwargs is sent as an empty mapping. The decoded result is
// returned as is.
//
// An operation outside the allowed set fails with "Invalid operation" before
// anything is sent.
func (a *API) Call(
	ctx context.Context,
	operation Operation,
	model string,
	args []interface{},
	kwargs map[string]interface{},
) (interface{}, error) {
	if !operation.Valid() {
		return nil, NewAPIError(invalidOperationDescription, nil)
	}

	if len(kwargs) == 0 {
		kwargs = map[string]interface{}{}
	}

	if a.debug && a.logger != nil {
		a.logger.Debug("Executing operation", map[string]interface{}{
			"operation": operation.String(),
			"model":     model,
		})
	}

	if a.chain.empty() {
		return a.execute(ctx, operation, model, args, kwargs)
	}

	req := &Request{
		Operation: operation,
		Model:     model,
		Args:      args,
		Kwargs:    kwargs,
		Metadata:  map[string]interface{}{},
	}

	err := a.chain.ExecuteRequestInterceptors(ctx, req)
	if err != nil {
		return nil, err
	}

	if !req.Operation.Valid() {
		return nil, NewAPIError(invalidOperationDescription, nil)
	}

	start := time.Now()
	result, err := a.execute(ctx, req.Operation, req.Model, req.Args, req.Kwargs)
	resp := &Response{Result: result, Error: err, Duration: time.Since(start)}

	chainErr := a.chain.ExecuteResponseInterceptors(ctx, req, resp)
	if err == nil && chainErr != nil {
		return nil, chainErr
	}

	return result, err
}

func (a *API) execute(
	ctx context.Context,
	operation Operation,
	model string,
	args []interface{},
	kwargs map[string]interface{},
) (interface{}, error) {
	result, err := a.transport.Call(ctx, constants.ExecuteMethod, []interface{}{
		a.database,
		a.uid,
		a.password,
		model,
		operation.String(),
		args,
		kwargs,
	})
	if err != nil {
		return nil, a.normalizeError(operation, model, err)
	}

	return result, nil
}

func (a *API) normalizeError(operation Operation, model string, err error) error {
	var fault *xmlrpc.Fault
	if errors.As(err, &fault) {
		if a.logger != nil {
			a.logger.Warn("Remote fault", map[string]interface{}{
				"operation": operation.String(),
				"model":     model,
				"code":      fault.Code,
			})
		}

		return NewAPIError(fault.String, err)
	}

	var addrErr *xmlrpc.AddressError
	if errors.As(err, &addrErr) {
		return NewAPIError(addrErr.Error(), err)
	}

	return err
}

// Write calls the "write" operation.
func (a *API) Write(ctx context.Context, model string, args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	return a.Call(ctx, OperationWrite, model, args, kwargs)
}

// Create calls the "create" operation.
func (a *API) Create(ctx context.Context, model string, args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	return a.Call(ctx, OperationCreate, model, args, kwargs)
}

// Read calls the "read" operation.
func (a *API) Read(ctx context.Context, model string, args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	return a.Call(ctx, OperationRead, model, args, kwargs)
}

// Search calls the "search" operation.
func (a *API) Search(ctx context.Context, model string, args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	return a.Call(ctx, OperationSearch, model, args, kwargs)
}

// SearchCount calls the "search_count" operation.
func (a *API) SearchCount(ctx context.Context, model string, args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	return a.Call(ctx, OperationSearchCount, model, args, kwargs)
}

// SearchRead calls the "search_read" operation.
func (a *API) SearchRead(ctx context.Context, model string, args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	return a.Call(ctx, OperationSearchRead, model, args, kwargs)
}

// FieldsGet calls the "fields_get" operation.
func (a *API) FieldsGet(ctx context.Context, model string, args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	return a.Call(ctx, OperationFieldsGet, model, args, kwargs)
}

// Unlink calls the "unlink" operation.
func (a *API) Unlink(ctx context.Context, model string, args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	return a.Call(ctx, OperationUnlink, model, args, kwargs)
}
