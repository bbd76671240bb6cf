package model

import "time"

// Applicant is a recruiting candidate record served by the v1 API.
type Applicant struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;index" json:"name"`
	Email     string    `gorm:"size:255;index" json:"email"`
	Age       int       `json:"age"`
	Position  string    `gorm:"size:100" json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateApplicantPayload is the request body for POST /applicants.
type CreateApplicantPayload struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Age      int    `json:"age" validate:"required,gte=0"`
	Position string `json:"position" validate:"omitempty,max=100"`
}
