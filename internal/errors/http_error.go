package errors

import "net/http"

// HTTPError represents an error with an associated HTTP status code.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTPError with the given code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{
		Code:    code,
		Message: message,
	}
}

// Faults the booking handler maps to responses. The 500 message is
// deliberately generic; details stay in the server log.
var (
	ErrMissingFields = NewHTTPError(http.StatusBadRequest, "Missing required fields")
	ErrServer        = NewHTTPError(http.StatusInternalServerError, "Server error")
)
