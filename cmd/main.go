package main

import (
	"fmt"
	"os"

	"recruitgateway/cmd/reports"
	"recruitgateway/src/database"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

var Version string

func main() {
	app := cli.NewApp()
	app.Name = "Recruit Gateway CMD"
	app.Usage = "The recruit gateway command line interface"

	app.Commands = []cli.Command{
		purgeCMD,
		alertTestCMD,
	}

	if err := app.Run(os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var (
	purgeCMD = cli.Command{
		Name:        "purge",
		Usage:       "delete error reports past the retention window",
		Action:      purgeAction,
		ArgsUsage:   "",
		Flags:       []cli.Flag{},
		Description: `Delete error reports older than REPORT_RETENTION_DAYS`,
	}
	alertTestCMD = cli.Command{
		Name:        "alerttest",
		Usage:       "fire a synthetic alert through the webhook",
		Action:      alertTestAction,
		ArgsUsage:   "",
		Flags:       []cli.Flag{},
		Description: `Send one test alert to ALERT_WEBHOOK_URL`,
	}
)

func purgeAction(_ *cli.Context) error {

	logrus.Info("Starting report purge CMD")
	if err := database.InitMainDB(); err != nil {
		logrus.WithError(err).Fatal("Failed to connect to database")
	}

	purger := &reports.Purger{
		Log: logrus.WithField("cmd", "purge"),
		DB:  database.MainDB,
	}

	err := purger.Start()
	if err != nil {
		logrus.WithError(err).Error("Starting purge CMD")
		return err
	}

	return nil
}

func alertTestAction(_ *cli.Context) error {

	logrus.Info("Starting alert test CMD")

	tester := &reports.AlertTester{
		Log: logrus.WithField("cmd", "alerttest"),
	}

	err := tester.Start()
	if err != nil {
		logrus.WithError(err).Error("Starting alert test CMD")
		return err
	}

	return nil
}
