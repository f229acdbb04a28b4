package converter

import (
	"healthcare-records-api/internal/delivery/dto"
	"healthcare-records-api/internal/domain/entity"

	"github.com/google/uuid"
)

// DoctorToResponse converts a Doctor entity to the full detail projection
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:                doctor.ID,
		Name:              doctor.Name,
		Specialty:         doctor.Specialty,
		LicenseNumber:     doctor.LicenseNumber,
		Phone:             doctor.Phone,
		Email:             doctor.Email,
		YearsOfExperience: doctor.YearsOfExperience,
		CreatedAt:         doctor.CreatedAt,
		UpdatedAt:         doctor.UpdatedAt,
	}
}

// DoctorsToListItems converts Doctor entities to the reduced list
// projection, attaching the derived patient assignment counts.
func DoctorsToListItems(doctors []entity.Doctor, patientCounts map[uuid.UUID]int64) []dto.DoctorListItem {
	items := make([]dto.DoctorListItem, len(doctors))
	for i, doctor := range doctors {
		items[i] = dto.DoctorListItem{
			ID:                doctor.ID,
			Name:              doctor.Name,
			Specialty:         doctor.Specialty,
			Phone:             doctor.Phone,
			PatientCount:      patientCounts[doctor.ID],
			YearsOfExperience: doctor.YearsOfExperience,
		}
	}
	return items
}
