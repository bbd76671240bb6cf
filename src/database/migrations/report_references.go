package migrations

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// backfillReportReferences assigns a reference to error reports written
// before the reference column existed so alert payloads can always link
// to a row.
func backfillReportReferences(db *gorm.DB) error {
	type row struct {
		ID uint
	}

	var missing []row
	if err := db.Table("error_reports").
		Where("reference IS NULL OR reference = ''").
		Find(&missing).Error; err != nil {
		return fmt.Errorf("list reports without reference: %w", err)
	}

	for _, r := range missing {
		if err := db.Table("error_reports").
			Where("id = ?", r.ID).
			Update("reference", uuid.NewString()).Error; err != nil {
			return fmt.Errorf("backfill reference for report %d: %w", r.ID, err)
		}
	}

	return nil
}
