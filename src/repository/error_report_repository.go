package repository

import (
	"context"
	"time"

	"recruitgateway/src/database"
	"recruitgateway/src/model"

	logger "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ErrorReportRepository handles persistence of normalized error reports.
type ErrorReportRepository struct {
	db *gorm.DB
}

// NewErrorReportRepository creates a new repository instance using the main
// read/write database.
func NewErrorReportRepository() *ErrorReportRepository {
	return &ErrorReportRepository{
		db: database.MainDB,
	}
}

// WithDB allows overriding the underlying *gorm.DB instance.
// Useful for tests or when using a specific session/transaction.
func (r *ErrorReportRepository) WithDB(db *gorm.DB) *ErrorReportRepository {
	return &ErrorReportRepository{db: db}
}

// Create persists a new error report in the database.
func (r *ErrorReportRepository) Create(
	ctx context.Context,
	report *model.ErrorReport,
) error {

	logger.WithFields(map[string]interface{}{
		"label":   report.Label,
		"path":    report.Path,
		"status":  report.Status,
		"alerted": report.Alerted,
	}).Error("Persisting error report")

	return r.db.WithContext(ctx).Create(report).Error
}

// DeleteOlderThan removes reports created before the cutoff and returns
// the number of rows deleted.
func (r *ErrorReportRepository) DeleteOlderThan(
	ctx context.Context,
	cutoff time.Time,
) (int64, error) {

	result := r.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&model.ErrorReport{})
	if result.Error != nil {
		return 0, result.Error
	}

	logger.WithFields(map[string]interface{}{
		"cutoff":  cutoff,
		"deleted": result.RowsAffected,
	}).Info("Purged old error reports")

	return result.RowsAffected, nil
}
