// Package xmlrpc is a minimal XML-RPC transport used by the odoo package.
//
// Requests are encoded with github.com/kolo/xmlrpc and sent through a
// go-retryablehttp client with retries disabled, so each Call is exactly one
// HTTP round trip. Errors fall into three typed categories plus whatever the
// HTTP stack returns:
//
//   - *Fault: the server processed the call and rejected it.
//   - *AddressError: the endpoint's host name could not be resolved.
//   - *ProtocolError: the server answered with a non-200 status.
package xmlrpc
