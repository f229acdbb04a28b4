package repository

import (
	"healthcare-records-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MappingRepository interface {
	Create(db *gorm.DB, mapping *entity.PatientDoctorMapping) error
	FindAllByOwner(db *gorm.DB, ownerID uuid.UUID) ([]entity.PatientDoctorMapping, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.PatientDoctorMapping, error)
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.PatientDoctorMapping, error)
	DeleteByPatientAndDoctor(db *gorm.DB, patientID, doctorID uuid.UUID) (int64, error)
	CountByPatientIDs(db *gorm.DB, patientIDs []uuid.UUID) (map[uuid.UUID]int64, error)
	CountByDoctorIDs(db *gorm.DB, doctorIDs []uuid.UUID) (map[uuid.UUID]int64, error)
}
