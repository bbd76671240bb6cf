package reports

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	RetentionDays int    `envconfig:"REPORT_RETENTION_DAYS" default:"90"`
	TestMessage   string `envconfig:"ALERT_TEST_MESSAGE" default:"synthetic alert from recruit-gateway"`
}

func GetConfig() *Config {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		panic(fmt.Errorf("error processing env config: %w", err))
	}
	return &config
}
