package handler

import (
	"encoding/json"
	"net/http"

	"healthcare-records-api/internal/delivery/dto"
	"healthcare-records-api/internal/delivery/http/middleware"
	"healthcare-records-api/internal/usecase"
	"healthcare-records-api/pkg/response"
	"healthcare-records-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type MappingHandler struct {
	mappingUsecase usecase.MappingUsecase
	validator      *validator.CustomValidator
}

func NewMappingHandler(mappingUsecase usecase.MappingUsecase, validator *validator.CustomValidator) *MappingHandler {
	return &MappingHandler{
		mappingUsecase: mappingUsecase,
		validator:      validator,
	}
}

func (h *MappingHandler) CreateMapping(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req dto.CreateMappingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	mapping, err := h.mappingUsecase.CreateMapping(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrAlreadyAssigned:
			response.Error(w, http.StatusBadRequest, "This patient is already assigned to this doctor", nil)
		case usecase.ErrMappingNotFound:
			response.NotFound(w, "Assignment not found")
		default:
			response.InternalServerError(w, "Failed to create assignment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Assignment created successfully", mapping)
}

func (h *MappingHandler) GetAllMappings(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	mappings, err := h.mappingUsecase.GetAllMappings(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to get assignments")
		return
	}

	response.Success(w, http.StatusOK, "Assignments retrieved successfully", mappings)
}

func (h *MappingHandler) GetMappingsByPatient(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	vars := mux.Vars(r)
	patientID, err := uuid.Parse(vars["patientId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	mappings, err := h.mappingUsecase.GetMappingsByPatient(r.Context(), userID, patientID)
	if err != nil {
		if err == usecase.ErrPatientNotFound {
			response.NotFound(w, "Patient not found")
			return
		}
		response.InternalServerError(w, "Failed to get assignments")
		return
	}

	response.Success(w, http.StatusOK, "Assignments retrieved successfully", mappings)
}

// RemoveMapping deletes an assignment identified by the (patient, doctor)
// pair carried in the request body
func (h *MappingHandler) RemoveMapping(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req dto.RemoveMappingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	err := h.mappingUsecase.RemoveMapping(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrMappingNotFound:
			response.NotFound(w, "Assignment not found")
		default:
			response.InternalServerError(w, "Failed to remove assignment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Assignment removed successfully", nil)
}
