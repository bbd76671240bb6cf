package connectors

import (
	"context"
	"fmt"
	"time"

	"recruitgateway/src/model"

	"github.com/go-resty/resty/v2"
	logger "github.com/sirupsen/logrus"
)

const (
	// Default retry configuration
	defaultRetryAttempts   = 3
	defaultRetryBaseDelay  = 500 * time.Millisecond
	defaultRetryMaxBackoff = 4 * time.Second
)

// AlertPayload is the body pushed to the ops webhook when a report asks
// for human attention.
type AlertPayload struct {
	Service   string `json:"service"`
	Reference string `json:"reference"`
	Label     string `json:"label"`
	Method    string `json:"method"`
	Path      string `json:"path"`
	Status    int    `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// WebhookNotifier delivers alert payloads to an external webhook.
type WebhookNotifier struct {
	service string
	http    *resty.Client
}

func isRetryableResp(r *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	if r == nil {
		return false
	}
	return r.StatusCode() >= 500 || r.StatusCode() == 429
}

// NewWebhookNotifier builds a notifier against the given webhook URL.
func NewWebhookNotifier(webhookURL, service string) *WebhookNotifier {
	httpClient := resty.New().
		SetBaseURL(webhookURL).
		SetTimeout(10 * time.Second).
		SetRetryCount(defaultRetryAttempts - 1).
		SetRetryWaitTime(defaultRetryBaseDelay).
		SetRetryMaxWaitTime(defaultRetryMaxBackoff).
		AddRetryCondition(isRetryableResp)

	return &WebhookNotifier{
		service: service,
		http:    httpClient,
	}
}

// Notify pushes one alert. The caller owns the deadline via ctx.
func (n *WebhookNotifier) Notify(ctx context.Context, report *model.ErrorReport) error {
	payload := AlertPayload{
		Service:   n.service,
		Reference: report.Reference,
		Label:     report.Label,
		Method:    report.Method,
		Path:      report.Path,
		Status:    report.Status,
		Message:   report.Message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	resp, err := n.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post("")
	if err != nil {
		return fmt.Errorf("post alert webhook: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("alert webhook responded %d", resp.StatusCode())
	}

	logger.WithFields(map[string]interface{}{
		"reference": report.Reference,
		"status":    resp.StatusCode(),
	}).Info("Alert delivered")

	return nil
}
