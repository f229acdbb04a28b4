package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateMappingRequest struct {
	PatientID uuid.UUID `json:"patient_id" validate:"required"`
	DoctorID  uuid.UUID `json:"doctor_id" validate:"required"`
	IsPrimary bool      `json:"is_primary"`
	Notes     string    `json:"notes" validate:"omitempty"`
}

type RemoveMappingRequest struct {
	PatientID uuid.UUID `json:"patient_id" validate:"required"`
	DoctorID  uuid.UUID `json:"doctor_id" validate:"required"`
}

// Response DTOs

// MappingResponse augments the stored assignment with denormalized
// patient/doctor fields computed at response time.
type MappingResponse struct {
	ID              uuid.UUID `json:"id"`
	PatientID       uuid.UUID `json:"patient_id"`
	DoctorID        uuid.UUID `json:"doctor_id"`
	PatientName     string    `json:"patient_name"`
	DoctorName      string    `json:"doctor_name"`
	DoctorSpecialty string    `json:"doctor_specialty"`
	IsPrimary       bool      `json:"is_primary"`
	Notes           string    `json:"notes,omitempty"`
	AssignedDate    time.Time `json:"assigned_date"`
}

type MappingListResponse struct {
	Mappings []MappingResponse `json:"mappings"`
	Total    int               `json:"total"`
}
