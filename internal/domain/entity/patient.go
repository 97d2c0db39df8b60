package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Patient represents a patient medical record owned by a user
type Patient struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID         uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	DateOfBirth    *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	Gender         string     `gorm:"type:varchar(10)" json:"gender,omitempty"`
	Phone          string     `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Address        string     `gorm:"type:text" json:"address,omitempty"`
	MedicalHistory StringList `gorm:"type:jsonb" json:"medical_history"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User         User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// Gender constants
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// IsOwnedBy checks whether the record belongs to the given user.
func (p *Patient) IsOwnedBy(u *User) bool {
	return u != nil && p.UserID == u.ID
}

// CanBeViewedBy reports whether the actor may read this record.
// Patients only see their own record; Admin, Doctor and Staff see any.
func (p *Patient) CanBeViewedBy(actor *User) bool {
	if actor == nil {
		return false
	}
	if actor.IsPatient() {
		return p.IsOwnedBy(actor)
	}
	return true
}

// CanBeUpdatedBy reports whether the actor may modify this record.
// Admin and Doctor may update any record; everyone else must own it.
func (p *Patient) CanBeUpdatedBy(actor *User) bool {
	if actor == nil {
		return false
	}
	if actor.IsAdmin() || actor.IsDoctor() {
		return true
	}
	return p.IsOwnedBy(actor)
}

// StringList stores an ordered list of strings as a jsonb column
type StringList []string

// Value returns json value, implement driver.Valuer interface
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal([]string(l))
}

// Scan scans a jsonb value into StringList, implements sql.Scanner interface
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal jsonb value:", value))
	}

	var result []string
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}
	*l = StringList(result)
	return nil
}
