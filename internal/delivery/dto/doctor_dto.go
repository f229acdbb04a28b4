package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateDoctorRequest struct {
	Name              string `json:"name" validate:"required,min=2,max=100"`
	Specialty         string `json:"specialty" validate:"required,max=100"`
	LicenseNumber     string `json:"license_number" validate:"required,max=50"`
	Phone             string `json:"phone" validate:"required,max=15,phone"`
	Email             string `json:"email" validate:"required,email"`
	YearsOfExperience int    `json:"years_of_experience" validate:"gte=0,lte=70"`
}

type UpdateDoctorRequest struct {
	Name              string `json:"name" validate:"omitempty,min=2,max=100"`
	Specialty         string `json:"specialty" validate:"omitempty,max=100"`
	LicenseNumber     string `json:"license_number" validate:"omitempty,max=50"`
	Phone             string `json:"phone" validate:"omitempty,max=15,phone"`
	Email             string `json:"email" validate:"omitempty,email"`
	YearsOfExperience *int   `json:"years_of_experience" validate:"omitempty,gte=0,lte=70"`
}

// Response DTOs

type DoctorResponse struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Specialty         string    `json:"specialty"`
	LicenseNumber     string    `json:"license_number"`
	Phone             string    `json:"phone"`
	Email             string    `json:"email"`
	YearsOfExperience int       `json:"years_of_experience"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// DoctorListItem is the reduced list projection with a derived patient
// assignment count in place of full timestamps.
type DoctorListItem struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Specialty         string    `json:"specialty"`
	Phone             string    `json:"phone"`
	PatientCount      int64     `json:"patient_count"`
	YearsOfExperience int       `json:"years_of_experience"`
}

type DoctorListResponse struct {
	Doctors []DoctorListItem `json:"doctors"`
	Total   int              `json:"total"`
}
