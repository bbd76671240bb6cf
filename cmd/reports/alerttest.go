package reports

import (
	"context"
	"fmt"
	"time"

	"recruitgateway/src/connectors"
	"recruitgateway/src/model"

	"github.com/google/uuid"
	logger "github.com/sirupsen/logrus"
)

// AlertTester fires one synthetic alert through the webhook notifier so
// ops can verify the channel end to end.
type AlertTester struct {
	Log    *logger.Entry
	Config *Config
}

func (a *AlertTester) Start() error {
	a.Config = GetConfig()

	connCfg := connectors.GetConfig()
	if connCfg.AlertWebhookURL == "" {
		return fmt.Errorf("ALERT_WEBHOOK_URL is not set")
	}

	notifier := connectors.NewWebhookNotifier(connCfg.AlertWebhookURL, connCfg.AlertServiceLabel)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	report := &model.ErrorReport{
		Reference: uuid.NewString(),
		Label:     "alerttest",
		Method:    "CLI",
		Path:      "-",
		Status:    0,
		Message:   a.Config.TestMessage,
	}

	if err := notifier.Notify(ctx, report); err != nil {
		return err
	}

	a.Log.WithField("reference", report.Reference).Info("test alert delivered")
	return nil
}
