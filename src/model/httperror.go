package model

import "fmt"

// Detail is the payload attached to an explicit HTTP error. Callers may
// raise either a free-form string or structured fields; both forms are
// normalized to this struct at the boundary. Alert is input-only: it is
// consumed by the reporting sink and never emitted in the envelope.
type Detail struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Alert   bool   `json:"alert,omitempty"`
}

// HTTPError is an explicit HTTP failure raised by route handlers and
// middleware. It travels as a value, never a panic.
type HTTPError struct {
	StatusCode int
	Detail     Detail
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Detail.Message)
}

// NewHTTPError wraps a plain message the way duck-typed string details
// were handled upstream: a generic "Error" label with the text as message.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: status,
		Detail:     Detail{Error: "Error", Message: message},
	}
}

// NewHTTPErrorDetail raises a structured detail as-is.
func NewHTTPErrorDetail(status int, detail Detail) *HTTPError {
	return &HTTPError{StatusCode: status, Detail: detail}
}
