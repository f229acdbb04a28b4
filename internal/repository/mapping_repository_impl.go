package repository

import (
	"healthcare-records-api/internal/domain/entity"
	domainRepo "healthcare-records-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type mappingRepository struct{}

func NewMappingRepository() domainRepo.MappingRepository {
	return &mappingRepository{}
}

func (r *mappingRepository) Create(db *gorm.DB, mapping *entity.PatientDoctorMapping) error {
	return db.Create(mapping).Error
}

func (r *mappingRepository) FindAllByOwner(db *gorm.DB, ownerID uuid.UUID) ([]entity.PatientDoctorMapping, error) {
	var mappings []entity.PatientDoctorMapping
	err := db.Joins("JOIN patients ON patients.id = patient_doctor_mappings.patient_id").
		Where("patients.user_id = ?", ownerID).
		Preload("Patient").
		Preload("Doctor").
		Order("assigned_date DESC").
		Find(&mappings).Error
	if err != nil {
		return nil, err
	}
	return mappings, nil
}

func (r *mappingRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.PatientDoctorMapping, error) {
	var mappings []entity.PatientDoctorMapping
	err := db.Where("patient_id = ?", patientID).
		Preload("Patient").
		Preload("Doctor").
		Order("assigned_date DESC").
		Find(&mappings).Error
	if err != nil {
		return nil, err
	}
	return mappings, nil
}

func (r *mappingRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.PatientDoctorMapping, error) {
	var mappings []entity.PatientDoctorMapping
	err := db.Where("doctor_id = ?", doctorID).
		Preload("Patient").
		Preload("Doctor").
		Order("assigned_date DESC").
		Find(&mappings).Error
	if err != nil {
		return nil, err
	}
	return mappings, nil
}

func (r *mappingRepository) DeleteByPatientAndDoctor(db *gorm.DB, patientID, doctorID uuid.UUID) (int64, error) {
	result := db.Where("patient_id = ? AND doctor_id = ?", patientID, doctorID).
		Delete(&entity.PatientDoctorMapping{})
	return result.RowsAffected, result.Error
}

func (r *mappingRepository) CountByPatientIDs(db *gorm.DB, patientIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	return r.countGrouped(db, "patient_id", patientIDs)
}

func (r *mappingRepository) CountByDoctorIDs(db *gorm.DB, doctorIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	return r.countGrouped(db, "doctor_id", doctorIDs)
}

func (r *mappingRepository) countGrouped(db *gorm.DB, column string, ids []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(ids))
	if len(ids) == 0 {
		return counts, nil
	}

	type countRow struct {
		ID    uuid.UUID
		Count int64
	}
	var rows []countRow

	err := db.Model(&entity.PatientDoctorMapping{}).
		Select(column+" AS id, COUNT(*) AS count").
		Where(column+" IN ?", ids).
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.ID] = row.Count
	}
	return counts, nil
}
