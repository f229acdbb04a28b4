package entity

import (
	"time"

	"github.com/google/uuid"
)

// PatientDoctorMapping assigns a patient to a doctor. At most one mapping
// may exist per (patient, doctor) pair; the constraint lives in the store.
// Authorization is transitive through Patient.UserID, the mapping itself
// carries no owner.
type PatientDoctorMapping struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_mappings_patient_doctor;index" json:"patient_id"`
	DoctorID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_mappings_patient_doctor;index" json:"doctor_id"`
	AssignedDate time.Time `gorm:"autoCreateTime" json:"assigned_date"`
	IsPrimary    bool      `gorm:"not null;default:false" json:"is_primary"`
	Notes        string    `gorm:"type:text" json:"notes,omitempty"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (PatientDoctorMapping) TableName() string {
	return "patient_doctor_mappings"
}
