package xmlrpc

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddressError_Error(t *testing.T) {
	t.Parallel()

	err := NewAddressError(-2, "Name or service not known")
	assert.Equal(t, "[Errno -2] Name or service not known", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestNewAddressError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		dnsErr   *net.DNSError
		expected string
	}{
		{
			name:     "host not found",
			dnsErr:   &net.DNSError{Err: "no such host", Name: "odoo.invalid", IsNotFound: true},
			expected: "[Errno -2] Name or service not known",
		},
		{
			name:     "temporary failure",
			dnsErr:   &net.DNSError{Err: "server misbehaving", Name: "odoo.example", IsTemporary: true},
			expected: "[Errno -3] Temporary failure in name resolution",
		},
		{
			name:     "timeout",
			dnsErr:   &net.DNSError{Err: "i/o timeout", Name: "odoo.example", IsTimeout: true},
			expected: "[Errno -3] Temporary failure in name resolution",
		},
		{
			name:     "other failure",
			dnsErr:   &net.DNSError{Err: "unexpected", Name: "odoo.example"},
			expected: "[Errno -4] Non-recoverable failure in name resolution",
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := newAddressError(tt.dnsErr)
			assert.Equal(t, tt.expected, err.Error())
			assert.Same(t, tt.dnsErr, err.Unwrap())
		})
	}
}

func TestClassifyTransportError(t *testing.T) {
	t.Parallel()

	dnsErr := &net.DNSError{Err: "no such host", Name: "odoo.invalid", IsNotFound: true}
	wrapped := &net.OpError{Op: "dial", Net: "tcp", Err: dnsErr}

	classified := classifyTransportError(wrapped)
	addrErr, ok := classified.(*AddressError)
	assert.True(t, ok)
	assert.Equal(t, EAINoName, addrErr.Code)

	refused := &net.OpError{Op: "dial", Net: "tcp", Err: assert.AnError}
	assert.Same(t, refused, classifyTransportError(refused))
}

func TestFault_Error(t *testing.T) {
	t.Parallel()

	fault := &Fault{Code: 2, String: "Access Denied"}
	assert.Equal(t, "fault 2: Access Denied", fault.Error())
}

func TestProtocolError_Error(t *testing.T) {
	t.Parallel()

	err := &ProtocolError{URL: "http://h:8069/xmlrpc/2/object", StatusCode: 404, Status: "404 Not Found"}
	assert.Equal(t, "protocol error for http://h:8069/xmlrpc/2/object: 404 Not Found", err.Error())
}
