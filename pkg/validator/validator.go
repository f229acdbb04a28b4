package validator

import (
	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// Phone numbers accept digits, spaces, hyphens and a plus sign only.
	v.RegisterValidation("phone", validatePhone)

	return &CustomValidator{
		validator: v,
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "email":
				errors[field] = field + " must be a valid email address"
			case "min":
				errors[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				errors[field] = field + " must be at most " + e.Param() + " characters"
			case "gte":
				errors[field] = field + " must be greater than or equal to " + e.Param()
			case "lte":
				errors[field] = field + " must be less than or equal to " + e.Param()
			case "phone":
				errors[field] = field + " must contain only digits, spaces, hyphens, and plus sign"
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}

func validatePhone(fl validator.FieldLevel) bool {
	phone := fl.Field().String()
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			continue
		}
		switch r {
		case ' ', '-', '+':
			continue
		}
		return false
	}
	return true
}
