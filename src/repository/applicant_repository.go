package repository

import (
	"context"

	"recruitgateway/src/database"
	"recruitgateway/src/model"

	logger "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ApplicantRepository handles read/write operations for applicants.
type ApplicantRepository struct {
	db *gorm.DB
}

// NewApplicantRepository creates a new repository instance using the main
// read/write database.
func NewApplicantRepository() *ApplicantRepository {
	return &ApplicantRepository{
		db: database.MainDB,
	}
}

// WithDB allows overriding the underlying *gorm.DB instance.
// Useful for tests or when using a specific session/transaction.
func (r *ApplicantRepository) WithDB(db *gorm.DB) *ApplicantRepository {
	return &ApplicantRepository{db: db}
}

// Create inserts a new applicant into the database.
// The given applicant will be updated with the generated ID and timestamps.
func (r *ApplicantRepository) Create(
	ctx context.Context,
	applicant *model.Applicant,
) error {

	logger.WithFields(map[string]interface{}{
		"name":  applicant.Name,
		"email": applicant.Email,
	}).Debug("Creating applicant")

	return r.db.WithContext(ctx).Create(applicant).Error
}

// FindByID loads one applicant. Returns gorm.ErrRecordNotFound when the
// id does not exist.
func (r *ApplicantRepository) FindByID(
	ctx context.Context,
	id uint,
) (*model.Applicant, error) {

	var applicant model.Applicant
	if err := r.db.WithContext(ctx).First(&applicant, id).Error; err != nil {
		return nil, err
	}
	return &applicant, nil
}
