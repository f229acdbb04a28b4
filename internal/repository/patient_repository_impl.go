package repository

import (
	"errors"

	"healthcare-records-api/internal/domain/entity"
	domainRepo "healthcare-records-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	return db.Create(patient).Error
}

func (r *patientRepository) FindByIDAndOwner(db *gorm.DB, id, ownerID uuid.UUID) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Where("id = ? AND user_id = ?", id, ownerID).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindAllByOwner(db *gorm.DB, ownerID uuid.UUID) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.Where("user_id = ?", ownerID).
		Order("name ASC").
		Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) Update(db *gorm.DB, patient *entity.Patient) error {
	return db.Save(patient).Error
}

// Delete removes the patient row; assignment rows follow via the store's
// ON DELETE CASCADE. The owner filter keeps non-owned rows untouchable.
func (r *patientRepository) Delete(db *gorm.DB, id, ownerID uuid.UUID) (int64, error) {
	result := db.Where("id = ? AND user_id = ?", id, ownerID).Delete(&entity.Patient{})
	return result.RowsAffected, result.Error
}
