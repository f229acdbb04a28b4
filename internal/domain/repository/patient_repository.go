package repository

import (
	"healthcare-records-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PatientRepository reads and writes patient records. Every lookup takes the
// owner's user ID; a patient owned by someone else is reported as absent.
type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	FindByIDAndOwner(db *gorm.DB, id, ownerID uuid.UUID) (*entity.Patient, error)
	FindAllByOwner(db *gorm.DB, ownerID uuid.UUID) ([]entity.Patient, error)
	Update(db *gorm.DB, patient *entity.Patient) error
	Delete(db *gorm.DB, id, ownerID uuid.UUID) (int64, error)
}
