package connectors

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	AlertWebhookURL   string `envconfig:"ALERT_WEBHOOK_URL" default:""`
	AlertServiceLabel string `envconfig:"ALERT_SERVICE_LABEL" default:"recruit-gateway"`
}

func GetConfig() Config {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		panic(fmt.Errorf("error processing env config: %w", err))
	}
	return config
}
