package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateAppointmentRequest struct {
	PatientID uuid.UUID  `json:"patient_id" validate:"required"`
	DoctorID  uuid.UUID  `json:"doctor_id" validate:"required"`
	StartAt   time.Time  `json:"start_at" validate:"required"`
	EndAt     *time.Time `json:"end_at" validate:"omitempty"`
	Reason    string     `json:"reason" validate:"omitempty"`
}

// UpdateAppointmentRequest carries optional overrides. A zero value (empty
// string, zero time) is treated as absent and leaves the stored value
// untouched.
type UpdateAppointmentRequest struct {
	StartAt *time.Time `json:"start_at" validate:"omitempty"`
	EndAt   *time.Time `json:"end_at" validate:"omitempty"`
	Reason  string     `json:"reason" validate:"omitempty"`
	Status  string     `json:"status" validate:"omitempty,oneof=Scheduled Completed Cancelled"`
}

type PatientSummary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name,omitempty"`
	Gender      string    `json:"gender,omitempty"`
	DateOfBirth string    `json:"date_of_birth,omitempty"`
}

type DoctorSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name,omitempty"`
	Email string    `json:"email,omitempty"`
}

type AppointmentResponse struct {
	ID        uuid.UUID       `json:"id"`
	PatientID uuid.UUID       `json:"patient_id"`
	DoctorID  uuid.UUID       `json:"doctor_id"`
	Reason    string          `json:"reason,omitempty"`
	Notes     string          `json:"notes,omitempty"`
	Status    string          `json:"status"`
	StartAt   time.Time       `json:"start_at"`
	EndAt     time.Time       `json:"end_at"`
	Location  string          `json:"location"`
	CreatedBy *uuid.UUID      `json:"created_by,omitempty"`
	Patient   *PatientSummary `json:"patient,omitempty"`
	Doctor    *DoctorSummary  `json:"doctor,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
