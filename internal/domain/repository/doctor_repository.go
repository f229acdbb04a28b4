package repository

import (
	"healthcare-records-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DoctorRepository reads and writes doctor records. Doctors are shared, so
// lookups are not scoped to any owner.
type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.Doctor) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Doctor, error)
	FindAll(db *gorm.DB) ([]entity.Doctor, error)
	Update(db *gorm.DB, doctor *entity.Doctor) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
