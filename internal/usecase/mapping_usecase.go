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

var (
	ErrMappingNotFound = errors.New("assignment not found")
	ErrAlreadyAssigned = errors.New("patient is already assigned to this doctor")
)

// MappingUsecase manages patient-doctor assignments. An assignment has no
// owner of its own; every check goes through the referenced patient's owner.
type MappingUsecase interface {
	CreateMapping(ctx context.Context, userID uuid.UUID, req *dto.CreateMappingRequest) (*dto.MappingResponse, error)
	GetAllMappings(ctx context.Context, userID uuid.UUID) (*dto.MappingListResponse, error)
	GetMappingsByPatient(ctx context.Context, userID, patientID uuid.UUID) (*dto.MappingListResponse, error)
	GetMappingsByDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.MappingListResponse, error)
	RemoveMapping(ctx context.Context, userID uuid.UUID, req *dto.RemoveMappingRequest) error
}

type mappingUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	doctorRepo   repository.DoctorRepository
	mappingRepo  repository.MappingRepository
	auditService service.AuditService
}

func NewMappingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	mappingRepo repository.MappingRepository,
	auditService service.AuditService,
) MappingUsecase {
	return &mappingUsecase{
		db:           db,
		log:          log,
		patientRepo:  patientRepo,
		doctorRepo:   doctorRepo,
		mappingRepo:  mappingRepo,
		auditService: auditService,
	}
}

func (u *mappingUsecase) CreateMapping(ctx context.Context, userID uuid.UUID, req *dto.CreateMappingRequest) (*dto.MappingResponse, error) {
	// Resolve the patient through the caller's scope before the doctor is
	// even looked up; a patient owned by someone else reads as absent.
	patient, err := u.patientRepo.FindByIDAndOwner(u.db.WithContext(ctx), req.PatientID, userID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	mapping := &entity.PatientDoctorMapping{
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
		IsPrimary: req.IsPrimary,
		Notes:     req.Notes,
	}

	// The (patient, doctor) pair is unique at the store; a concurrent
	// duplicate insert loses here, not in a read-then-write check
	if err := u.mappingRepo.Create(tx, mapping); err != nil {
		if isDuplicateKeyError(err, "patient_doctor") {
			return nil, ErrAlreadyAssigned
		}
		if isForeignKeyError(err, "patient") || isForeignKeyError(err, "doctor") {
			// Referenced row deleted between lookup and insert
			return nil, ErrMappingNotFound
		}
		u.log.Warnf("Failed to create mapping: %+v", err)
		return nil, err
	}

	mapping.Patient = *patient
	mapping.Doctor = *doctor

	if err := u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionMappingCreate, "patient_doctor_mapping", mapping.ID.String(), converter.MappingToResponse(mapping)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
		// Don't fail the transaction for audit log errors
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.MappingToResponse(mapping), nil
}

func (u *mappingUsecase) GetAllMappings(ctx context.Context, userID uuid.UUID) (*dto.MappingListResponse, error) {
	mappings, err := u.mappingRepo.FindAllByOwner(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find mappings: %+v", err)
		return nil, err
	}

	responses := converter.MappingsToResponses(mappings)

	return &dto.MappingListResponse{
		Mappings: responses,
		Total:    len(responses),
	}, nil
}

func (u *mappingUsecase) GetMappingsByPatient(ctx context.Context, userID, patientID uuid.UUID) (*dto.MappingListResponse, error) {
	patient, err := u.patientRepo.FindByIDAndOwner(u.db.WithContext(ctx), patientID, userID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	mappings, err := u.mappingRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find mappings: %+v", err)
		return nil, err
	}

	responses := converter.MappingsToResponses(mappings)

	return &dto.MappingListResponse{
		Mappings: responses,
		Total:    len(responses),
	}, nil
}

// GetMappingsByDoctor returns every assignment for a doctor regardless of
// who owns the referenced patients. Doctors are a shared resource, so this
// view is not filtered by caller.
func (u *mappingUsecase) GetMappingsByDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.MappingListResponse, error) {
	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	mappings, err := u.mappingRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find mappings: %+v", err)
		return nil, err
	}

	responses := converter.MappingsToResponses(mappings)

	return &dto.MappingListResponse{
		Mappings: responses,
		Total:    len(responses),
	}, nil
}

func (u *mappingUsecase) RemoveMapping(ctx context.Context, userID uuid.UUID, req *dto.RemoveMappingRequest) error {
	patient, err := u.patientRepo.FindByIDAndOwner(u.db.WithContext(ctx), req.PatientID, userID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affectedRows, err := u.mappingRepo.DeleteByPatientAndDoctor(tx, req.PatientID, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to delete mapping: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrMappingNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, &userID, entity.AuditActionMappingDelete, "patient_doctor_mapping", req.PatientID.String()+":"+req.DoctorID.String(), nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
