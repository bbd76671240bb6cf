package reporting

import (
	"context"
	"errors"
	"net/http"

	"recruitgateway/src/model"

	"github.com/google/uuid"
	logger "github.com/sirupsen/logrus"
)

type reportStore interface {
	Create(ctx context.Context, report *model.ErrorReport) error
}

type alertNotifier interface {
	Notify(ctx context.Context, report *model.ErrorReport) error
}

// NoopReporter swallows every report. The gateway ships with the sink
// muted; wiring a real sink is an explicit deployment decision.
type NoopReporter struct{}

func (NoopReporter) ReportError(context.Context, error, string, string, *http.Request, bool) {}

// SinkReporter persists every report and forwards alert-flagged ones to
// the webhook notifier.
type SinkReporter struct {
	store    reportStore
	notifier alertNotifier
}

// NewSinkReporter builds a reporter. notifier may be nil; reports are
// then persisted but never paged out.
func NewSinkReporter(store reportStore, notifier alertNotifier) *SinkReporter {
	return &SinkReporter{store: store, notifier: notifier}
}

func (s *SinkReporter) ReportError(ctx context.Context, err error, label string, message string, r *http.Request, shouldAlert bool) {
	report := &model.ErrorReport{
		Reference: uuid.NewString(),
		Label:     label,
		Status:    statusOf(err),
		Message:   message,
		Alerted:   shouldAlert && s.notifier != nil,
	}
	if r != nil {
		report.Method = r.Method
		report.Path = r.URL.Path
	}

	if cerr := s.store.Create(ctx, report); cerr != nil {
		logger.WithError(cerr).Error("failed to persist error report")
	}

	if !shouldAlert || s.notifier == nil {
		return
	}
	if nerr := s.notifier.Notify(ctx, report); nerr != nil {
		logger.WithError(nerr).WithField("reference", report.Reference).
			Error("failed to deliver alert")
	}
}

func statusOf(err error) int {
	var httpErr *model.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	return http.StatusInternalServerError
}
