package odoo

// Descriptions used for errors raised locally.
const (
	invalidOperationDescription = "Invalid operation"
)

// APIError is returned for invalid operations, remote faults and host name
// resolution failures. Its message is the bare description; the transport
// error that caused it, if any, is available through errors.Unwrap.
type APIError struct {
	Description string
	Err         error
}

// NewAPIError creates an APIError with an optional cause.
func NewAPIError(description string, cause error) *APIError {
	return &APIError{Description: description, Err: cause}
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Description
}

// Unwrap returns the original transport error.
func (e *APIError) Unwrap() error {
	return e.Err
}
