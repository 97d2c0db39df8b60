package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "Scheduled"
	AppointmentStatusCompleted AppointmentStatus = "Completed"
	AppointmentStatusCancelled AppointmentStatus = "Cancelled"
)

const (
	// DefaultAppointmentDuration is applied when no end time is given.
	DefaultAppointmentDuration = 30 * time.Minute

	// DefaultLocation could also be "Virtual" for teleconsultation.
	DefaultLocation = "Clinic"
)

// Appointment links a patient record to a doctor for a time slot
type Appointment struct {
	ID          uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID   uuid.UUID         `gorm:"type:uuid;not null;index:idx_appointments_patient_start" json:"patient_id"`
	DoctorID    uuid.UUID         `gorm:"type:uuid;not null;index:idx_appointments_doctor_start" json:"doctor_id"`
	Reason      string            `gorm:"type:text" json:"reason,omitempty"`
	Notes       string            `gorm:"type:text" json:"notes,omitempty"`
	Status      AppointmentStatus `gorm:"type:varchar(20);not null;default:'Scheduled';index" json:"status"`
	StartAt     time.Time         `gorm:"not null;index:idx_appointments_patient_start;index:idx_appointments_doctor_start" json:"start_at"`
	EndAt       time.Time         `json:"end_at"`
	Location    string            `gorm:"type:varchar(255);not null;default:'Clinic'" json:"location"`
	CreatedByID *uuid.UUID        `gorm:"type:uuid;column:created_by" json:"created_by,omitempty"`
	CreatedAt   time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient   Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor    User    `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	CreatedBy *User   `gorm:"foreignKey:CreatedByID" json:"created_by_user,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// DeriveEndAt returns the effective end time for an appointment.
// A missing or zero end time defaults to startAt + 30 minutes.
func DeriveEndAt(startAt time.Time, endAt *time.Time) time.Time {
	if endAt != nil && !endAt.IsZero() {
		return *endAt
	}
	return startAt.Add(DefaultAppointmentDuration)
}

// IsScheduled checks if the appointment is still scheduled
func (a *Appointment) IsScheduled() bool {
	return a.Status == AppointmentStatusScheduled
}

// IsCompleted checks if the appointment is completed
func (a *Appointment) IsCompleted() bool {
	return a.Status == AppointmentStatusCompleted
}

// IsCancelled checks if the appointment is cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// Complete changes appointment status to completed
func (a *Appointment) Complete() {
	a.Status = AppointmentStatusCompleted
}

// Cancel changes appointment status to cancelled.
// There is no terminal-state guard: a completed appointment can still be
// marked cancelled.
func (a *Appointment) Cancel() {
	a.Status = AppointmentStatusCancelled
}
