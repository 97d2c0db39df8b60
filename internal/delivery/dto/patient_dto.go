package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePatientRequest struct {
	UserID         uuid.UUID `json:"user_id" validate:"required"`
	DateOfBirth    string    `json:"date_of_birth" validate:"omitempty"` // Format: YYYY-MM-DD
	Gender         string    `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	Phone          string    `json:"phone" validate:"omitempty,max=20"`
	Address        string    `json:"address" validate:"omitempty"`
	MedicalHistory []string  `json:"medical_history" validate:"omitempty"`
}

// UpdatePatientRequest is a shallow patch: only provided fields are merged
// into the stored record.
type UpdatePatientRequest struct {
	DateOfBirth    string    `json:"date_of_birth" validate:"omitempty"` // Format: YYYY-MM-DD
	Gender         string    `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	Phone          string    `json:"phone" validate:"omitempty,max=20"`
	Address        string    `json:"address" validate:"omitempty"`
	MedicalHistory *[]string `json:"medical_history" validate:"omitempty"`
}

type PatientResponse struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	Name           string    `json:"name,omitempty"`
	Email          string    `json:"email,omitempty"`
	DateOfBirth    string    `json:"date_of_birth,omitempty"`
	Gender         string    `json:"gender,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	Address        string    `json:"address,omitempty"`
	MedicalHistory []string  `json:"medical_history"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
