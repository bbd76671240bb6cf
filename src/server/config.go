package server

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port        string   `envconfig:"PORT" default:"9898"`
	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"http://localhost:3000"`
	APIKeyHash  string   `envconfig:"API_KEY_HASH" default:""`

	// EnableErrorSink turns the alert/persistence sink on. Off by default:
	// the normalizer then runs with a muted reporter.
	EnableErrorSink bool `envconfig:"ENABLE_ERROR_SINK" default:"false"`
}

func GetConfig() *Config {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		panic(fmt.Errorf("error processing env config: %w", err))
	}
	return &config
}
