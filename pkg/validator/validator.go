package validator

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// FieldError describe una violación de validación a nivel de campo,
// lista para serializar en el data de la respuesta 400.
type FieldError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Param string `json:"param,omitempty"`
}

var validate = validator.New()

func init() {
	// fecha en formato YYYY-MM-DD (las fechas viajan como string en el API)
	_ = validate.RegisterValidation("fecha", func(fl validator.FieldLevel) bool {
		_, err := time.Parse("2006-01-02", fl.Field().String())
		return err == nil
	})
}

// ValidateStruct valida los tags `validate` de un DTO y devuelve los errores
// de campo; nil si todo pasa.
func ValidateStruct(data any) []FieldError {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "body", Tag: "invalid"}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Tag: fe.Tag(), Param: fe.Param()})
	}
	return out
}

// IsUUID reporta si s es un UUID válido.
func IsUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// ParseDate valida y convierte una fecha YYYY-MM-DD.
func ParseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// FormatDate serializa una fecha al formato del API.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
