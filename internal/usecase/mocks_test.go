package usecase

import (
	"context"
	"database/sql"
	"errors"
	"io"

	"healthcare-records-api/internal/domain/entity"
	"healthcare-records-api/internal/domain/repository"
	"healthcare-records-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var errNoDatabase = errors.New("no database behind this handle")

// txStub satisfies gorm's connection and transaction interfaces without a
// live database. Begin and Commit succeed; any attempt to actually run SQL
// fails, which is fine because the repository mocks ignore the handle.
type txStub struct{}

func (*txStub) PrepareContext(ctx context.Context, query string) (*sql.Stmt, error) {
	return nil, errNoDatabase
}

func (*txStub) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return nil, errNoDatabase
}

func (*txStub) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, errNoDatabase
}

func (*txStub) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return nil
}

func (s *txStub) BeginTx(ctx context.Context, opts *sql.TxOptions) (gorm.ConnPool, error) {
	return s, nil
}

func (*txStub) Commit() error   { return nil }
func (*txStub) Rollback() error { return nil }

func newTestDB() *gorm.DB {
	db := &gorm.DB{Config: &gorm.Config{ConnPool: &txStub{}}}
	db.Statement = &gorm.Statement{DB: db, ConnPool: db.Config.ConnPool}
	return db
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// --- mockUserRepository ---

var _ repository.UserRepository = (*mockUserRepository)(nil)

type mockUserRepository struct {
	CreateFunc      func(db *gorm.DB, user *entity.User) error
	FindByEmailFunc func(db *gorm.DB, email string) (*entity.User, error)
	FindByIDFunc    func(db *gorm.DB, id uuid.UUID) (*entity.User, error)
}

func (m *mockUserRepository) Create(db *gorm.DB, user *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(db, user)
	}
	return errors.New("CreateFunc not implemented in mock")
}

func (m *mockUserRepository) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(db, email)
	}
	return nil, errors.New("FindByEmailFunc not implemented in mock")
}

func (m *mockUserRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(db, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

// --- mockPatientRepository ---

var _ repository.PatientRepository = (*mockPatientRepository)(nil)

type mockPatientRepository struct {
	CreateFunc           func(db *gorm.DB, patient *entity.Patient) error
	FindByIDAndOwnerFunc func(db *gorm.DB, id, ownerID uuid.UUID) (*entity.Patient, error)
	FindAllByOwnerFunc   func(db *gorm.DB, ownerID uuid.UUID) ([]entity.Patient, error)
	UpdateFunc           func(db *gorm.DB, patient *entity.Patient) error
	DeleteFunc           func(db *gorm.DB, id, ownerID uuid.UUID) (int64, error)

	FindByIDAndOwnerCallCount int
}

func (m *mockPatientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(db, patient)
	}
	return errors.New("CreateFunc not implemented in mock")
}

func (m *mockPatientRepository) FindByIDAndOwner(db *gorm.DB, id, ownerID uuid.UUID) (*entity.Patient, error) {
	m.FindByIDAndOwnerCallCount++
	if m.FindByIDAndOwnerFunc != nil {
		return m.FindByIDAndOwnerFunc(db, id, ownerID)
	}
	return nil, errors.New("FindByIDAndOwnerFunc not implemented in mock")
}

func (m *mockPatientRepository) FindAllByOwner(db *gorm.DB, ownerID uuid.UUID) ([]entity.Patient, error) {
	if m.FindAllByOwnerFunc != nil {
		return m.FindAllByOwnerFunc(db, ownerID)
	}
	return nil, errors.New("FindAllByOwnerFunc not implemented in mock")
}

func (m *mockPatientRepository) Update(db *gorm.DB, patient *entity.Patient) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(db, patient)
	}
	return errors.New("UpdateFunc not implemented in mock")
}

func (m *mockPatientRepository) Delete(db *gorm.DB, id, ownerID uuid.UUID) (int64, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(db, id, ownerID)
	}
	return 0, errors.New("DeleteFunc not implemented in mock")
}

// --- mockDoctorRepository ---

var _ repository.DoctorRepository = (*mockDoctorRepository)(nil)

type mockDoctorRepository struct {
	CreateFunc   func(db *gorm.DB, doctor *entity.Doctor) error
	FindByIDFunc func(db *gorm.DB, id uuid.UUID) (*entity.Doctor, error)
	FindAllFunc  func(db *gorm.DB) ([]entity.Doctor, error)
	UpdateFunc   func(db *gorm.DB, doctor *entity.Doctor) error
	DeleteFunc   func(db *gorm.DB, id uuid.UUID) (int64, error)

	FindByIDCallCount int
}

func (m *mockDoctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(db, doctor)
	}
	return errors.New("CreateFunc not implemented in mock")
}

func (m *mockDoctorRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Doctor, error) {
	m.FindByIDCallCount++
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(db, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

func (m *mockDoctorRepository) FindAll(db *gorm.DB) ([]entity.Doctor, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(db)
	}
	return nil, errors.New("FindAllFunc not implemented in mock")
}

func (m *mockDoctorRepository) Update(db *gorm.DB, doctor *entity.Doctor) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(db, doctor)
	}
	return errors.New("UpdateFunc not implemented in mock")
}

func (m *mockDoctorRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(db, id)
	}
	return 0, errors.New("DeleteFunc not implemented in mock")
}

// --- mockMappingRepository ---

var _ repository.MappingRepository = (*mockMappingRepository)(nil)

type mockMappingRepository struct {
	CreateFunc                   func(db *gorm.DB, mapping *entity.PatientDoctorMapping) error
	FindAllByOwnerFunc           func(db *gorm.DB, ownerID uuid.UUID) ([]entity.PatientDoctorMapping, error)
	FindByPatientIDFunc          func(db *gorm.DB, patientID uuid.UUID) ([]entity.PatientDoctorMapping, error)
	FindByDoctorIDFunc           func(db *gorm.DB, doctorID uuid.UUID) ([]entity.PatientDoctorMapping, error)
	DeleteByPatientAndDoctorFunc func(db *gorm.DB, patientID, doctorID uuid.UUID) (int64, error)
	CountByPatientIDsFunc        func(db *gorm.DB, patientIDs []uuid.UUID) (map[uuid.UUID]int64, error)
	CountByDoctorIDsFunc         func(db *gorm.DB, doctorIDs []uuid.UUID) (map[uuid.UUID]int64, error)
}

func (m *mockMappingRepository) Create(db *gorm.DB, mapping *entity.PatientDoctorMapping) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(db, mapping)
	}
	return errors.New("CreateFunc not implemented in mock")
}

func (m *mockMappingRepository) FindAllByOwner(db *gorm.DB, ownerID uuid.UUID) ([]entity.PatientDoctorMapping, error) {
	if m.FindAllByOwnerFunc != nil {
		return m.FindAllByOwnerFunc(db, ownerID)
	}
	return nil, errors.New("FindAllByOwnerFunc not implemented in mock")
}

func (m *mockMappingRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.PatientDoctorMapping, error) {
	if m.FindByPatientIDFunc != nil {
		return m.FindByPatientIDFunc(db, patientID)
	}
	return nil, errors.New("FindByPatientIDFunc not implemented in mock")
}

func (m *mockMappingRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.PatientDoctorMapping, error) {
	if m.FindByDoctorIDFunc != nil {
		return m.FindByDoctorIDFunc(db, doctorID)
	}
	return nil, errors.New("FindByDoctorIDFunc not implemented in mock")
}

func (m *mockMappingRepository) DeleteByPatientAndDoctor(db *gorm.DB, patientID, doctorID uuid.UUID) (int64, error) {
	if m.DeleteByPatientAndDoctorFunc != nil {
		return m.DeleteByPatientAndDoctorFunc(db, patientID, doctorID)
	}
	return 0, errors.New("DeleteByPatientAndDoctorFunc not implemented in mock")
}

func (m *mockMappingRepository) CountByPatientIDs(db *gorm.DB, patientIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	if m.CountByPatientIDsFunc != nil {
		return m.CountByPatientIDsFunc(db, patientIDs)
	}
	return nil, errors.New("CountByPatientIDsFunc not implemented in mock")
}

func (m *mockMappingRepository) CountByDoctorIDs(db *gorm.DB, doctorIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	if m.CountByDoctorIDsFunc != nil {
		return m.CountByDoctorIDsFunc(db, doctorIDs)
	}
	return nil, errors.New("CountByDoctorIDsFunc not implemented in mock")
}

// --- mockAuditLogRepository ---

var _ repository.AuditLogRepository = (*mockAuditLogRepository)(nil)

type mockAuditLogRepository struct {
	CreateFunc       func(db *gorm.DB, log *entity.AuditLog) error
	FindByUserIDFunc func(db *gorm.DB, userID uuid.UUID) ([]entity.AuditLog, error)
}

func (m *mockAuditLogRepository) Create(db *gorm.DB, log *entity.AuditLog) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(db, log)
	}
	return errors.New("CreateFunc not implemented in mock")
}

func (m *mockAuditLogRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.AuditLog, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(db, userID)
	}
	return nil, errors.New("FindByUserIDFunc not implemented in mock")
}

// --- mockAuditService ---

var _ service.AuditService = (*mockAuditService)(nil)

type mockAuditService struct {
	CreateCalls int
	UpdateCalls int
	DeleteCalls int
	LastAction  string
}

func (m *mockAuditService) LogCreate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, newValue interface{}) error {
	m.CreateCalls++
	m.LastAction = action
	return nil
}

func (m *mockAuditService) LogUpdate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	m.UpdateCalls++
	m.LastAction = action
	return nil
}

func (m *mockAuditService) LogDelete(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue interface{}) error {
	m.DeleteCalls++
	m.LastAction = action
	return nil
}
