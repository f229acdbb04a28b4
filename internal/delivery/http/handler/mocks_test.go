package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"healthcare-records-api/internal/delivery/dto"
	"healthcare-records-api/internal/delivery/http/middleware"
	"healthcare-records-api/internal/usecase"
	"healthcare-records-api/pkg/response"
	"healthcare-records-api/pkg/validator"

	"github.com/google/uuid"
)

func newTestValidator() *validator.CustomValidator {
	return validator.NewValidator()
}

// authedRequest builds a request carrying an authenticated user ID, the way
// the auth middleware would have left it.
func authedRequest(t *testing.T, method, target string, userID uuid.UUID, body interface{}) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, target, &buf)
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, userID)
	return req.WithContext(ctx)
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var resp response.Response
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return resp
}

// --- mockPatientUsecase ---

var _ usecase.PatientUsecase = (*mockPatientUsecase)(nil)

type mockPatientUsecase struct {
	CreatePatientFunc  func(ctx context.Context, userID uuid.UUID, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	GetAllPatientsFunc func(ctx context.Context, userID uuid.UUID) (*dto.PatientListResponse, error)
	GetPatientFunc     func(ctx context.Context, userID, patientID uuid.UUID) (*dto.PatientResponse, error)
	UpdatePatientFunc  func(ctx context.Context, userID, patientID uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	DeletePatientFunc  func(ctx context.Context, userID, patientID uuid.UUID) error
}

func (m *mockPatientUsecase) CreatePatient(ctx context.Context, userID uuid.UUID, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	if m.CreatePatientFunc != nil {
		return m.CreatePatientFunc(ctx, userID, req)
	}
	return nil, errors.New("CreatePatientFunc not implemented in mock")
}

func (m *mockPatientUsecase) GetAllPatients(ctx context.Context, userID uuid.UUID) (*dto.PatientListResponse, error) {
	if m.GetAllPatientsFunc != nil {
		return m.GetAllPatientsFunc(ctx, userID)
	}
	return nil, errors.New("GetAllPatientsFunc not implemented in mock")
}

func (m *mockPatientUsecase) GetPatient(ctx context.Context, userID, patientID uuid.UUID) (*dto.PatientResponse, error) {
	if m.GetPatientFunc != nil {
		return m.GetPatientFunc(ctx, userID, patientID)
	}
	return nil, errors.New("GetPatientFunc not implemented in mock")
}

func (m *mockPatientUsecase) UpdatePatient(ctx context.Context, userID, patientID uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	if m.UpdatePatientFunc != nil {
		return m.UpdatePatientFunc(ctx, userID, patientID, req)
	}
	return nil, errors.New("UpdatePatientFunc not implemented in mock")
}

func (m *mockPatientUsecase) DeletePatient(ctx context.Context, userID, patientID uuid.UUID) error {
	if m.DeletePatientFunc != nil {
		return m.DeletePatientFunc(ctx, userID, patientID)
	}
	return errors.New("DeletePatientFunc not implemented in mock")
}

// --- mockDoctorUsecase ---

var _ usecase.DoctorUsecase = (*mockDoctorUsecase)(nil)

type mockDoctorUsecase struct {
	CreateDoctorFunc  func(ctx context.Context, userID uuid.UUID, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	GetAllDoctorsFunc func(ctx context.Context) (*dto.DoctorListResponse, error)
	GetDoctorFunc     func(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error)
	UpdateDoctorFunc  func(ctx context.Context, userID, doctorID uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	DeleteDoctorFunc  func(ctx context.Context, userID, doctorID uuid.UUID) error
}

func (m *mockDoctorUsecase) CreateDoctor(ctx context.Context, userID uuid.UUID, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	if m.CreateDoctorFunc != nil {
		return m.CreateDoctorFunc(ctx, userID, req)
	}
	return nil, errors.New("CreateDoctorFunc not implemented in mock")
}

func (m *mockDoctorUsecase) GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	if m.GetAllDoctorsFunc != nil {
		return m.GetAllDoctorsFunc(ctx)
	}
	return nil, errors.New("GetAllDoctorsFunc not implemented in mock")
}

func (m *mockDoctorUsecase) GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error) {
	if m.GetDoctorFunc != nil {
		return m.GetDoctorFunc(ctx, doctorID)
	}
	return nil, errors.New("GetDoctorFunc not implemented in mock")
}

func (m *mockDoctorUsecase) UpdateDoctor(ctx context.Context, userID, doctorID uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	if m.UpdateDoctorFunc != nil {
		return m.UpdateDoctorFunc(ctx, userID, doctorID, req)
	}
	return nil, errors.New("UpdateDoctorFunc not implemented in mock")
}

func (m *mockDoctorUsecase) DeleteDoctor(ctx context.Context, userID, doctorID uuid.UUID) error {
	if m.DeleteDoctorFunc != nil {
		return m.DeleteDoctorFunc(ctx, userID, doctorID)
	}
	return errors.New("DeleteDoctorFunc not implemented in mock")
}

// --- mockMappingUsecase ---

var _ usecase.MappingUsecase = (*mockMappingUsecase)(nil)

type mockMappingUsecase struct {
	CreateMappingFunc        func(ctx context.Context, userID uuid.UUID, req *dto.CreateMappingRequest) (*dto.MappingResponse, error)
	GetAllMappingsFunc       func(ctx context.Context, userID uuid.UUID) (*dto.MappingListResponse, error)
	GetMappingsByPatientFunc func(ctx context.Context, userID, patientID uuid.UUID) (*dto.MappingListResponse, error)
	GetMappingsByDoctorFunc  func(ctx context.Context, doctorID uuid.UUID) (*dto.MappingListResponse, error)
	RemoveMappingFunc        func(ctx context.Context, userID uuid.UUID, req *dto.RemoveMappingRequest) error
}

func (m *mockMappingUsecase) CreateMapping(ctx context.Context, userID uuid.UUID, req *dto.CreateMappingRequest) (*dto.MappingResponse, error) {
	if m.CreateMappingFunc != nil {
		return m.CreateMappingFunc(ctx, userID, req)
	}
	return nil, errors.New("CreateMappingFunc not implemented in mock")
}

func (m *mockMappingUsecase) GetAllMappings(ctx context.Context, userID uuid.UUID) (*dto.MappingListResponse, error) {
	if m.GetAllMappingsFunc != nil {
		return m.GetAllMappingsFunc(ctx, userID)
	}
	return nil, errors.New("GetAllMappingsFunc not implemented in mock")
}

func (m *mockMappingUsecase) GetMappingsByPatient(ctx context.Context, userID, patientID uuid.UUID) (*dto.MappingListResponse, error) {
	if m.GetMappingsByPatientFunc != nil {
		return m.GetMappingsByPatientFunc(ctx, userID, patientID)
	}
	return nil, errors.New("GetMappingsByPatientFunc not implemented in mock")
}

func (m *mockMappingUsecase) GetMappingsByDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.MappingListResponse, error) {
	if m.GetMappingsByDoctorFunc != nil {
		return m.GetMappingsByDoctorFunc(ctx, doctorID)
	}
	return nil, errors.New("GetMappingsByDoctorFunc not implemented in mock")
}

func (m *mockMappingUsecase) RemoveMapping(ctx context.Context, userID uuid.UUID, req *dto.RemoveMappingRequest) error {
	if m.RemoveMappingFunc != nil {
		return m.RemoveMappingFunc(ctx, userID, req)
	}
	return errors.New("RemoveMappingFunc not implemented in mock")
}

// --- mockAuthUsecase ---

var _ usecase.AuthUsecase = (*mockAuthUsecase)(nil)

type mockAuthUsecase struct {
	RegisterFunc       func(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	LoginFunc          func(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	LogoutFunc         func(ctx context.Context, accessTokenID, refreshTokenID string) error
	RefreshTokenFunc   func(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentUserFunc func(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
}

func (m *mockAuthUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	return nil, errors.New("RegisterFunc not implemented in mock")
}

func (m *mockAuthUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return nil, errors.New("LoginFunc not implemented in mock")
}

func (m *mockAuthUsecase) Logout(ctx context.Context, accessTokenID, refreshTokenID string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, accessTokenID, refreshTokenID)
	}
	return errors.New("LogoutFunc not implemented in mock")
}

func (m *mockAuthUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	if m.RefreshTokenFunc != nil {
		return m.RefreshTokenFunc(ctx, req)
	}
	return nil, errors.New("RefreshTokenFunc not implemented in mock")
}

func (m *mockAuthUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	if m.GetCurrentUserFunc != nil {
		return m.GetCurrentUserFunc(ctx, userID)
	}
	return nil, errors.New("GetCurrentUserFunc not implemented in mock")
}
