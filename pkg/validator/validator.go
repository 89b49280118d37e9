package validator

import (
	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	return &CustomValidator{
		validator: validator.New(),
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
				errors[field] = field + " es requerido"
			case "email":
				errors[field] = field + " debe ser un correo válido"
			case "uuid":
				errors[field] = field + " debe ser un identificador válido"
			case "datetime":
				errors[field] = field + " debe tener el formato " + e.Param()
			case "min":
				errors[field] = field + " debe tener al menos " + e.Param() + " caracteres"
			case "max":
				errors[field] = field + " debe tener como máximo " + e.Param() + " caracteres"
			default:
				errors[field] = field + " es inválido"
			}
		}
	}

	return errors
}
