package xmlrpc

import (
	"fmt"
	"net"
)

// Fault is an application-level error returned by the remote server.
type Fault struct {
	// Code is the server's faultCode. Servers send integers or strings.
	Code   interface{}
	String string
}

func (f *Fault) Error() string {
	return fmt.Sprintf("fault %v: %s", f.Code, f.String)
}

// ProtocolError reports a non-200 HTTP response from the endpoint.
type ProtocolError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("protocol error for %s: %s", e.URL, e.Status)
}

// getaddrinfo(3) return codes.
const (
	EAINoName = -2
	EAIAgain  = -3
	EAIFail   = -4
)

var addressMessages = map[int]string{
	EAINoName: "Name or service not known",
	EAIAgain:  "Temporary failure in name resolution",
	EAIFail:   "Non-recoverable failure in name resolution",
}

// AddressError reports a failure to resolve the endpoint's host name.
type AddressError struct {
	Code    int
	Message string
	Err     error
}

// NewAddressError builds an AddressError with the given code and message.
func NewAddressError(code int, message string) *AddressError {
	return &AddressError{Code: code, Message: message}
}

func newAddressError(dnsErr *net.DNSError) *AddressError {
	code := EAIFail

	switch {
	case dnsErr.IsNotFound:
		code = EAINoName
	case dnsErr.IsTemporary, dnsErr.IsTimeout:
		code = EAIAgain
	}

	return &AddressError{Code: code, Message: addressMessages[code], Err: dnsErr}
}

// Error formats the error the way the C library reports it: "[Errno <code>] <message>".
func (e *AddressError) Error() string {
	return fmt.Sprintf("[Errno %d] %s", e.Code, e.Message)
}

func (e *AddressError) Unwrap() error {
	return e.Err
}
