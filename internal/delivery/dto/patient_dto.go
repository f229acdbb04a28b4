package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreatePatientRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Age     int    `json:"age" validate:"required,gte=1,lte=150"`
	Address string `json:"address" validate:"required,max=500"`
	Phone   string `json:"phone" validate:"omitempty,max=15,phone"`
	Email   string `json:"email" validate:"omitempty,email"`
}

// UpdatePatientRequest carries partial updates; absent fields stay
// unchanged. Owner and created_at are never updatable.
type UpdatePatientRequest struct {
	Name    string `json:"name" validate:"omitempty,min=2,max=100"`
	Age     *int   `json:"age" validate:"omitempty,gte=1,lte=150"`
	Address string `json:"address" validate:"omitempty,max=500"`
	Phone   string `json:"phone" validate:"omitempty,max=15,phone"`
	Email   string `json:"email" validate:"omitempty,email"`
}

// Response DTOs

type PatientResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PatientListItem is the reduced list projection: no address/email, a
// derived doctor assignment count instead.
type PatientListItem struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Age         int       `json:"age"`
	Phone       string    `json:"phone,omitempty"`
	DoctorCount int64     `json:"doctor_count"`
	CreatedAt   time.Time `json:"created_at"`
}

type PatientListResponse struct {
	Patients []PatientListItem `json:"patients"`
	Total    int               `json:"total"`
}
