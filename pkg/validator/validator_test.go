package validator

import (
	"testing"

	"healthcare-records-api/internal/delivery/dto"

	"github.com/stretchr/testify/assert"
)

func TestValidate_CreatePatientRequest_AgeBounds(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		age     int
		wantErr bool
	}{
		{"age zero rejected", 0, true},
		{"age at lower bound", 1, false},
		{"age at upper bound", 150, false},
		{"age above upper bound", 151, true},
		{"negative age rejected", -5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.CreatePatientRequest{
				Name:    "Jane Roe",
				Age:     tt.age,
				Address: "12 Elm Street",
			}
			err := v.Validate(&req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_CreateDoctorRequest_ExperienceBounds(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		years   int
		wantErr bool
	}{
		{"zero experience allowed", 0, false},
		{"upper bound allowed", 70, false},
		{"above upper bound rejected", 71, true},
		{"negative rejected", -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.CreateDoctorRequest{
				Name:              "Dr. House",
				Specialty:         "Diagnostics",
				LicenseNumber:     "LIC-001",
				Phone:             "08123456789",
				Email:             "house@example.com",
				YearsOfExperience: tt.years,
			}
			err := v.Validate(&req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_PhoneCharset(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		phone   string
		wantErr bool
	}{
		{"digits only", "08123456789", false},
		{"international prefix", "+62 812-3456", false},
		{"empty is optional", "", false},
		{"letters rejected", "0812abc", true},
		{"parentheses rejected", "(0812)345", true},
		{"dot rejected", "0812.345", true},
		{"too long rejected", "1234567890123456", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.CreatePatientRequest{
				Name:    "Jane Roe",
				Age:     30,
				Address: "12 Elm Street",
				Phone:   tt.phone,
			}
			err := v.Validate(&req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_UpdatePatientRequest_PartialFields(t *testing.T) {
	v := NewValidator()

	// Everything absent is a valid no-op update
	assert.NoError(t, v.Validate(&dto.UpdatePatientRequest{}))

	// A present age still honors the bounds
	badAge := 151
	assert.Error(t, v.Validate(&dto.UpdatePatientRequest{Age: &badAge}))

	goodAge := 40
	assert.NoError(t, v.Validate(&dto.UpdatePatientRequest{Age: &goodAge}))
}

func TestFormatValidationErrors(t *testing.T) {
	v := NewValidator()

	req := dto.CreatePatientRequest{
		Age:   200,
		Phone: "not-a-phone",
	}
	err := v.Validate(&req)
	assert.Error(t, err)

	formatted := v.FormatValidationErrors(err)
	assert.Equal(t, "Name is required", formatted["Name"])
	assert.Equal(t, "Age must be less than or equal to 150", formatted["Age"])
	assert.Contains(t, formatted["Phone"], "digits")
}
