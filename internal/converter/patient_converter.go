package converter

import (
	"healthcare-records-api/internal/delivery/dto"
	"healthcare-records-api/internal/domain/entity"

	"github.com/google/uuid"
)

// PatientToResponse converts a Patient entity to the full detail projection.
// The owner reference stays internal and is never part of the response.
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:        patient.ID,
		Name:      patient.Name,
		Age:       patient.Age,
		Address:   patient.Address,
		Phone:     patient.Phone,
		Email:     patient.Email,
		CreatedAt: patient.CreatedAt,
		UpdatedAt: patient.UpdatedAt,
	}
}

// PatientsToListItems converts Patient entities to the reduced list
// projection, attaching the derived doctor assignment counts.
func PatientsToListItems(patients []entity.Patient, doctorCounts map[uuid.UUID]int64) []dto.PatientListItem {
	items := make([]dto.PatientListItem, len(patients))
	for i, patient := range patients {
		items[i] = dto.PatientListItem{
			ID:          patient.ID,
			Name:        patient.Name,
			Age:         patient.Age,
			Phone:       patient.Phone,
			DoctorCount: doctorCounts[patient.ID],
			CreatedAt:   patient.CreatedAt,
		}
	}
	return items
}
