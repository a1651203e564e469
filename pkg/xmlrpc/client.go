package xmlrpc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"

	"github.com/fivetwenty-io/odoo-client/internal/constants"
	"github.com/hashicorp/go-retryablehttp"
	kolo "github.com/kolo/xmlrpc"
)

// Logger is the leveled key/value logger accepted by the transport. It has the
// same shape as retryablehttp.LeveledLogger, so hclog loggers satisfy it directly.
type Logger interface {
	Error(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client. Timeouts configured on it
// apply to every call.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http.HTTPClient = h
		}
	}
}

// WithLogger routes request logging through the given logger.
func WithLogger(l Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.http.Logger = l
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// Client invokes remote procedures on a single XML-RPC endpoint.
//
// A Client holds no per-call state and is safe for concurrent use.
type Client struct {
	endpoint  string
	userAgent string
	http      *retryablehttp.Client
}

// NewClient creates a Client for endpoint. The endpoint is not parsed or
// contacted until the first call.
func NewClient(endpoint string, opts ...Option) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 0
	rc.Logger = nil
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler

	c := &Client{
		endpoint:  endpoint,
		userAgent: constants.DefaultUserAgent,
		http:      rc,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Endpoint returns the URL the client posts to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Call invokes method with positional params and returns the decoded result.
//
// Remote faults are returned as *Fault and name resolution failures as
// *AddressError. Any other failure is returned as produced by the HTTP stack.
func (c *Client) Call(ctx context.Context, method string, params []interface{}) (interface{}, error) {
	body, err := kolo.EncodeMethodCall(method, params...)
	if err != nil {
		return nil, fmt.Errorf("encoding %s call: %w", method, err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", constants.XMLContentType)
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, classifyTransportError(err)
	}

	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)

		return nil, &ProtocolError{
			URL:        c.endpoint,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s response: %w", method, err)
	}

	return decodeResponse(kolo.Response(data))
}

func decodeResponse(resp kolo.Response) (interface{}, error) {
	if err := resp.Err(); err != nil {
		return nil, decodeFault(resp, err)
	}

	var result interface{}

	err := resp.Unmarshal(&result)
	if err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return result, nil
}

// decodeFault converts a fault body into *Fault. kolo only accepts integer
// fault codes, so the struct is re-read generically when it rejects one.
func decodeFault(resp kolo.Response, cause error) error {
	var kf kolo.FaultError
	if errors.As(cause, &kf) {
		return &Fault{Code: kf.Code, String: kf.String}
	}

	var raw map[string]interface{}

	err := resp.Unmarshal(&raw)
	if err != nil {
		return cause
	}

	message, ok := raw["faultString"].(string)
	if !ok {
		return cause
	}

	return &Fault{Code: raw["faultCode"], String: message}
}

func classifyTransportError(err error) error {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return newAddressError(dnsErr)
	}

	return err
}
