package entity

import (
	"time"

	"github.com/google/uuid"
)

// Doctor represents a healthcare professional. Doctors are a shared
// resource with no owner; any authenticated user may read and manage them.
type Doctor struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name              string    `gorm:"type:varchar(100);not null;index" json:"name"`
	Specialty         string    `gorm:"type:varchar(100);not null;index" json:"specialty"`
	LicenseNumber     string    `gorm:"type:varchar(50);uniqueIndex:uq_doctors_license_number;not null" json:"license_number"`
	Phone             string    `gorm:"type:varchar(15);not null" json:"phone"`
	Email             string    `gorm:"type:varchar(255);not null" json:"email"`
	YearsOfExperience int       `gorm:"not null;default:0" json:"years_of_experience"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	PatientAssignments []PatientDoctorMapping `gorm:"foreignKey:DoctorID" json:"patient_assignments,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// Experience bounds enforced at the service layer
const (
	DoctorMinExperience = 0
	DoctorMaxExperience = 70
)
