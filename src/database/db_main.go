package database

import (
	"fmt"
	"time"

	"recruitgateway/src/database/migrations"
	"recruitgateway/src/model"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// MainDB is the primary read/write database connection used by the application.
var MainDB *gorm.DB

// InitMainDB initializes the main (read/write) database connection and runs
// migrations. This should be called once at application startup (e.g. in main()).
func InitMainDB() error {

	config := GetConfig()

	var dialector gorm.Dialector
	switch config.DatabaseDriver {
	case "sqlite":
		// Local/dev runs keep reports in a file instead of Postgres.
		dialector = sqlite.Open(config.SQLitePath)
	default:
		dialector = postgres.Open(config.DatabaseURLMain)
	}

	db, err := gorm.Open(dialector,
		&gorm.Config{
			TranslateError: true,
			Logger:         logger.Default.LogMode(logger.LogLevel(config.GormLogLevel)),
		},
	)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to get DB from GORM")
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(1 * time.Hour)

	// Assign to the global variable only after a successful connection.
	MainDB = db

	logrus.Info("[database] MainDB connection established")

	// Add here all models that belong to the write-side schema.
	if err := MainDB.AutoMigrate(
		&model.ErrorReport{},
		&model.Applicant{},
		&migrations.DataMigration{},
	); err != nil {
		return fmt.Errorf("failed to run migrations on MainDB: %w", err)
	}

	if err := migrations.Run(MainDB); err != nil {
		return fmt.Errorf("failed to run data migrations on MainDB: %w", err)
	}

	logrus.Info("[database] MainDB migrations completed")

	return nil
}
