package model

import "time"

// ErrorReport represents a normalized failure that must be persisted
// for auditing, debugging, and monitoring purposes.
type ErrorReport struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Stable reference included in alert payloads so ops can find the row.
	Reference string `gorm:"size:36;uniqueIndex" json:"reference"`

	// Where the error happened
	Label  string `gorm:"size:100;index" json:"label"` // e.g. "500: recoverer"
	Method string `gorm:"size:10" json:"method"`       // HTTP method of the failed request
	Path   string `gorm:"size:255;index" json:"path"`  // URL path of the failed request

	// Error information
	Status  int    `gorm:"index" json:"status"`
	Message string `gorm:"type:text" json:"message"` // err.Error()

	// Whether the external alert channel was asked to fire.
	Alerted bool `gorm:"index" json:"alerted"`

	// Audit info
	CreatedAt time.Time `json:"created_at"`
}
