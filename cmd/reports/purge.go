package reports

import (
	"context"
	"time"

	"recruitgateway/src/repository"

	logger "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Purger deletes error reports older than the retention window.
type Purger struct {
	Log    *logger.Entry
	DB     *gorm.DB
	Config *Config
}

func (p *Purger) Start() error {
	p.Config = GetConfig()

	cutoff := time.Now().UTC().AddDate(0, 0, -p.Config.RetentionDays)
	repo := repository.NewErrorReportRepository().WithDB(p.DB)

	deleted, err := repo.DeleteOlderThan(context.Background(), cutoff)
	if err != nil {
		return err
	}

	p.Log.WithFields(map[string]interface{}{
		"cutoff":  cutoff,
		"deleted": deleted,
	}).Info("report purge finished")

	return nil
}
