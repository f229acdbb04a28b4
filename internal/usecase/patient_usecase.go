package usecase

import (
	"context"
	"errors"

	"healthcare-records-api/internal/converter"
	"healthcare-records-api/internal/delivery/dto"
	"healthcare-records-api/internal/domain/entity"
	"healthcare-records-api/internal/domain/repository"
	"healthcare-records-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ErrPatientNotFound covers both a missing patient and a patient owned by
// another user. The two cases must stay indistinguishable to the caller.
var ErrPatientNotFound = errors.New("patient not found")

type PatientUsecase interface {
	CreatePatient(ctx context.Context, userID uuid.UUID, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	GetAllPatients(ctx context.Context, userID uuid.UUID) (*dto.PatientListResponse, error)
	GetPatient(ctx context.Context, userID, patientID uuid.UUID) (*dto.PatientResponse, error)
	UpdatePatient(ctx context.Context, userID, patientID uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	DeletePatient(ctx context.Context, userID, patientID uuid.UUID) error
}

type patientUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	mappingRepo  repository.MappingRepository
	auditService service.AuditService
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	mappingRepo repository.MappingRepository,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		db:           db,
		log:          log,
		patientRepo:  patientRepo,
		mappingRepo:  mappingRepo,
		auditService: auditService,
	}
}

func (u *patientUsecase) CreatePatient(ctx context.Context, userID uuid.UUID, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	// Owner is always the caller, whatever the request body carried
	patient := &entity.Patient{
		UserID:  userID,
		Name:    req.Name,
		Age:     req.Age,
		Address: req.Address,
		Phone:   req.Phone,
		Email:   req.Email,
	}

	if err := u.patientRepo.Create(tx, patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionPatientCreate, "patient", patient.ID.String(), converter.PatientToResponse(patient)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
		// Don't fail the transaction for audit log errors
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetAllPatients(ctx context.Context, userID uuid.UUID) (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.FindAllByOwner(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find patients: %+v", err)
		return nil, err
	}

	patientIDs := make([]uuid.UUID, len(patients))
	for i, patient := range patients {
		patientIDs[i] = patient.ID
	}

	doctorCounts, err := u.mappingRepo.CountByPatientIDs(u.db.WithContext(ctx), patientIDs)
	if err != nil {
		u.log.Warnf("Failed to count patient assignments: %+v", err)
		return nil, err
	}

	items := converter.PatientsToListItems(patients, doctorCounts)

	return &dto.PatientListResponse{
		Patients: items,
		Total:    len(items),
	}, nil
}

func (u *patientUsecase) GetPatient(ctx context.Context, userID, patientID uuid.UUID) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByIDAndOwner(u.db.WithContext(ctx), patientID, userID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) UpdatePatient(ctx context.Context, userID, patientID uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByIDAndOwner(u.db.WithContext(ctx), patientID, userID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	// Capture old value for audit
	oldValue := converter.PatientToResponse(patient)

	// Owner and created_at stay untouched
	if req.Name != "" {
		patient.Name = req.Name
	}
	if req.Age != nil {
		patient.Age = *req.Age
	}
	if req.Address != "" {
		patient.Address = req.Address
	}
	if req.Phone != "" {
		patient.Phone = req.Phone
	}
	if req.Email != "" {
		patient.Email = req.Email
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.patientRepo.Update(tx, patient); err != nil {
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, err
	}

	newValue := converter.PatientToResponse(patient)
	if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionPatientUpdate, "patient", patient.ID.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) DeletePatient(ctx context.Context, userID, patientID uuid.UUID) error {
	patient, err := u.patientRepo.FindByIDAndOwner(u.db.WithContext(ctx), patientID, userID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}
	oldValue := converter.PatientToResponse(patient)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	// Assignment rows go with the patient via ON DELETE CASCADE
	affectedRows, err := u.patientRepo.Delete(tx, patientID, userID)
	if err != nil {
		u.log.Warnf("Failed to delete patient: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrPatientNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, &userID, entity.AuditActionPatientDelete, "patient", patientID.String(), oldValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
