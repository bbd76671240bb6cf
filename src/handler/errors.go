package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"recruitgateway/src/model"

	logger "github.com/sirupsen/logrus"
)

const (
	internalErrorLabel   = "An internal server error occurred."
	internalErrorMessage = "알수없는 에러가 발생했습니다. 자세한 사항은 errorlog 참고"
	fallbackErrorMessage = "알수없는 에러가 발생했습니다. 자세한 사항은 채널톡으로 문의주세요."
	validationErrorLabel = "Request Validation Error"

	defaultReportTimeout = 5 * time.Second
)

// ErrorReporter is the alerting/persistence sink consumed by the
// normalizer. shouldAlert distinguishes "page a human" from "record
// silently"; implementations must honor the context deadline.
type ErrorReporter interface {
	ReportError(ctx context.Context, err error, label string, message string, r *http.Request, shouldAlert bool)
}

// Normalizer maps every failure raised during request processing to one
// normalized JSON envelope. It is stateless per invocation and safe for
// concurrent use.
type Normalizer struct {
	reporter      ErrorReporter
	reportTimeout time.Duration
}

// NewNormalizer builds a normalizer around the given reporter. A nil
// reporter mutes the sink entirely.
func NewNormalizer(reporter ErrorReporter) *Normalizer {
	return &Normalizer{
		reporter:      reporter,
		reportTimeout: defaultReportTimeout,
	}
}

// WriteHTTPError renders an explicit HTTP error. Dispatch is on the
// carried status code:
//
//   - 400, 404 and any unlisted code echo the status and detail.
//   - 401 keeps 401 only when the detail's error field contains "autho"
//     (case-insensitive); anything else signaled through 401 is remapped
//     to 402. The substring rule is deliberate; do not replace it with a
//     smarter auth check.
//   - 403 responds with status only and NO body. Inconsistent with every
//     other branch and almost certainly a defect in the contract, but
//     clients may depend on it; kept until the contract version bumps.
func (n *Normalizer) WriteHTTPError(w http.ResponseWriter, r *http.Request, httpErr *model.HTTPError) {
	detail := httpErr.Detail

	switch httpErr.StatusCode {
	case http.StatusBadRequest:
		n.report(r, httpErr, "400: http_error", httpErr.Error(), detail.Alert)
		n.writeEnvelope(w, r, httpErr.StatusCode, detail)

	case http.StatusUnauthorized:
		status := http.StatusUnauthorized
		if !strings.Contains(strings.ToLower(detail.Error), "autho") {
			status = http.StatusPaymentRequired
		}
		n.writeEnvelope(w, r, status, detail)

	case http.StatusForbidden:
		w.WriteHeader(http.StatusForbidden)

	case http.StatusNotFound:
		n.report(r, httpErr, "404: http_error", httpErr.Error(), detail.Alert)
		n.writeEnvelope(w, r, httpErr.StatusCode, detail)

	default:
		n.report(r, httpErr, "500: http_error", httpErr.Error(), detail.Alert)
		n.writeEnvelope(w, r, httpErr.StatusCode, detail)
	}
}

// WriteValidationError renders a request-validation failure. All field
// errors collapse into one space-separated message; the first location
// segment (body/query/path) is dropped and the rest dot-joined.
func (n *Normalizer) WriteValidationError(w http.ResponseWriter, r *http.Request, fieldErrs []model.FieldError) {
	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		loc := ""
		if len(fe.Loc) > 1 {
			loc = strings.Join(fe.Loc[1:], ".")
		}
		parts = append(parts, fmt.Sprintf("%s: %s", loc, fe.Msg))
	}
	message := strings.Join(parts, " ")

	n.report(r, errors.New(message), "422: validation_error", message, true)

	env := model.NewErrorEnvelope(r, http.StatusUnprocessableEntity, validationErrorLabel, message)
	n.writeJSON(w, http.StatusUnprocessableEntity, env)
}

// Recoverer is the catch-all for anything the explicit writers never saw.
// Every panic terminates in a fixed 500 envelope; a client-disconnect
// abort still gets the envelope but is excluded from alerting so ops are
// not paged for flaky clients.
func (n *Normalizer) Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rvr := recover(); rvr != nil {
				n.writeInternalError(w, r, rvr)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (n *Normalizer) writeInternalError(w http.ResponseWriter, r *http.Request, rvr interface{}) {
	// The normalizer must never propagate: if building or encoding the
	// primary envelope blows up, fall back to the hard-coded envelope.
	defer func() {
		if rvr2 := recover(); rvr2 != nil {
			logger.WithField("panic", rvr2).Error("error envelope construction failed")
			n.writeFallback(w, r)
		}
	}()

	err := panicError(rvr)
	if !isDisconnect(rvr) {
		n.report(r, err, "500: recoverer", err.Error(), true)
	}

	env := model.NewErrorEnvelope(r, http.StatusInternalServerError, internalErrorLabel, internalErrorMessage)
	body, merr := json.Marshal(env)
	if merr != nil {
		n.writeFallback(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	if _, werr := w.Write(body); werr != nil {
		logger.WithError(werr).Error("failed to write error envelope")
	}
}

func (n *Normalizer) writeFallback(w http.ResponseWriter, r *http.Request) {
	env := model.NewErrorEnvelope(r, http.StatusInternalServerError, internalErrorLabel, fallbackErrorMessage)
	body, err := json.Marshal(env)
	if err != nil {
		// Cannot happen for a flat struct; last resort is an empty 500.
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write(body)
}

func (n *Normalizer) writeEnvelope(w http.ResponseWriter, r *http.Request, status int, detail model.Detail) {
	env := model.NewErrorEnvelope(r, status, detail.Error, detail.Message)
	n.writeJSON(w, status, env)
}

func (n *Normalizer) writeJSON(w http.ResponseWriter, status int, env model.ErrorEnvelope) {
	body, err := json.Marshal(env)
	if err != nil {
		logger.WithError(err).Error("failed to marshal error envelope")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		logger.WithError(err).Error("failed to write error envelope")
	}
}

// report hands the failure to the sink without ever blocking the
// response path: the call runs detached under its own deadline.
func (n *Normalizer) report(r *http.Request, err error, label, message string, shouldAlert bool) {
	if n.reporter == nil {
		return
	}
	req := r.Clone(context.Background())
	req.Body = nil

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), n.reportTimeout)
		defer cancel()
		n.reporter.ReportError(ctx, err, label, message, req, shouldAlert)
	}()
}

func panicError(rvr interface{}) error {
	if err, ok := rvr.(error); ok {
		return err
	}
	return fmt.Errorf("%+v", rvr)
}

// isDisconnect reports whether the panic is the net/http client-gone
// signal rather than a real handler failure.
func isDisconnect(rvr interface{}) bool {
	err, ok := rvr.(error)
	return ok && errors.Is(err, http.ErrAbortHandler)
}
