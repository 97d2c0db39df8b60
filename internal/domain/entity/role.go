package entity

// Role represents a user role in the system
type Role struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	RoleName    string `gorm:"type:varchar(50);uniqueIndex;not null" json:"role_name"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	// Relationships
	Users []User `gorm:"foreignKey:RoleID" json:"users,omitempty"`
}

func (Role) TableName() string {
	return "roles"
}

// Role ID constants (seeded by migration 000001)
const (
	RoleIDAdmin   = 1
	RoleIDDoctor  = 2
	RoleIDPatient = 3
	RoleIDStaff   = 4
)

// RoleNames constants
const (
	RoleAdmin   = "Admin"
	RoleDoctor  = "Doctor"
	RolePatient = "Patient"
	RoleStaff   = "Staff"
)

var roleNamesByID = map[int]string{
	RoleIDAdmin:   RoleAdmin,
	RoleIDDoctor:  RoleDoctor,
	RoleIDPatient: RolePatient,
	RoleIDStaff:   RoleStaff,
}

// RoleNameForID returns the role name for a seeded role ID, or "" when unknown.
func RoleNameForID(id int) string {
	return roleNamesByID[id]
}
