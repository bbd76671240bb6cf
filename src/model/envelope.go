package model

import (
	"net/http"
	"time"
)

// ErrorEnvelope is the normalized JSON error body returned to clients.
// Every terminal error response carries exactly these seven fields.
// Status and Code are equal today; clients must not assume they always
// will be, so both stay on the wire.
type ErrorEnvelope struct {
	Timestamp string `json:"timestamp"`
	Method    string `json:"method"`
	Path      string `json:"path"`
	Status    int    `json:"status"`
	Code      int    `json:"code"`
	Error     string `json:"error"`
	Message   string `json:"message"`
}

// NewErrorEnvelope stamps an envelope for the given request. The timestamp
// is the handling instant, not the instant the error originated.
func NewErrorEnvelope(r *http.Request, status int, errLabel, message string) ErrorEnvelope {
	return ErrorEnvelope{
		Timestamp: time.Now().UTC().Format("2006-01-02T15:04:05.000000"),
		Method:    r.Method,
		Path:      r.URL.Path,
		Status:    status,
		Code:      status,
		Error:     errLabel,
		Message:   message,
	}
}
