package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"recruitgateway/src/connectors"
	"recruitgateway/src/database"
	"recruitgateway/src/handler"
	"recruitgateway/src/reporting"
	"recruitgateway/src/repository"
	"recruitgateway/src/router"
	"recruitgateway/src/server"

	logger "github.com/sirupsen/logrus"
)

var APP_NAME = os.Getenv("APP_NAME")

func SetupLogger() {
	levelStr := strings.ToLower(os.Getenv("LOG_LEVEL"))

	level, err := logger.ParseLevel(levelStr)
	if err != nil {
		level = logger.DebugLevel // fallback seguro
	}

	logger.SetLevel(level)
	logger.SetFormatter(&logger.TextFormatter{
		FullTimestamp: true,
	})
}

func main() {
	SetupLogger()
	defer handlePanic()

	cfg := server.GetConfig()

	if err := database.InitMainDB(); err != nil {
		logger.WithError(err).Fatal("Failed to connect to database")
	}

	var reporter handler.ErrorReporter = reporting.NoopReporter{}
	if cfg.EnableErrorSink {
		connCfg := connectors.GetConfig()
		store := repository.NewErrorReportRepository()
		if connCfg.AlertWebhookURL != "" {
			reporter = reporting.NewSinkReporter(store,
				connectors.NewWebhookNotifier(connCfg.AlertWebhookURL, connCfg.AlertServiceLabel))
		} else {
			reporter = reporting.NewSinkReporter(store, nil)
		}
	}

	normalizer := handler.NewNormalizer(reporter)
	apiV1 := router.NewAPIRouter(normalizer, repository.NewApplicantRepository(), cfg.APIKeyHash)

	server.StartServer(cfg, server.NewRouter(cfg, normalizer, apiV1))
}

func handlePanic() {
	if r := recover(); r != nil {
		logger.WithError(fmt.Errorf("%+v", r)).Error(fmt.Sprintf("Application %s panic", APP_NAME))
	}
	//nolint
	time.Sleep(time.Second * 5)
}
