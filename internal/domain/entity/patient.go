package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient represents a patient record owned by the user who created it.
// UserID is set once at creation and never reassigned.
type Patient struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Name      string    `gorm:"type:varchar(100);not null;index" json:"name"`
	Age       int       `gorm:"not null" json:"age"`
	Address   string    `gorm:"type:text;not null" json:"address"`
	Phone     string    `gorm:"type:varchar(15)" json:"phone,omitempty"`
	Email     string    `gorm:"type:varchar(255)" json:"email,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User              User                   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	DoctorAssignments []PatientDoctorMapping `gorm:"foreignKey:PatientID" json:"doctor_assignments,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// Age bounds enforced at the service layer
const (
	PatientMinAge = 1
	PatientMaxAge = 150
)
