package converter

import (
	"healthcare-records-api/internal/delivery/dto"
	"healthcare-records-api/internal/domain/entity"
)

// MappingToResponse converts a PatientDoctorMapping entity to its response
// DTO. Patient and Doctor must be loaded; the denormalized name and
// specialty fields are computed here, never stored.
func MappingToResponse(mapping *entity.PatientDoctorMapping) *dto.MappingResponse {
	if mapping == nil {
		return nil
	}

	return &dto.MappingResponse{
		ID:              mapping.ID,
		PatientID:       mapping.PatientID,
		DoctorID:        mapping.DoctorID,
		PatientName:     mapping.Patient.Name,
		DoctorName:      mapping.Doctor.Name,
		DoctorSpecialty: mapping.Doctor.Specialty,
		IsPrimary:       mapping.IsPrimary,
		Notes:           mapping.Notes,
		AssignedDate:    mapping.AssignedDate,
	}
}

// MappingsToResponses converts a slice of PatientDoctorMapping entities to
// response DTOs
func MappingsToResponses(mappings []entity.PatientDoctorMapping) []dto.MappingResponse {
	responses := make([]dto.MappingResponse, len(mappings))
	for i := range mappings {
		responses[i] = *MappingToResponse(&mappings[i])
	}
	return responses
}
