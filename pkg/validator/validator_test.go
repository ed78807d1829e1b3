package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsanmartinc/puntoventa-api/pkg/validator"
)

type sampleDTO struct {
	Name string `validate:"required,min=1"`
	Date string `validate:"required,fecha"`
	ID   string `validate:"required,uuid4"`
}

func TestValidateStruct_Valido(t *testing.T) {
	errs := validator.ValidateStruct(sampleDTO{
		Name: "Widget",
		Date: "2025-03-01",
		ID:   "8f14e45f-ceea-467f-a187-5cedb1a5ad12",
	})
	assert.Nil(t, errs)
}

func TestValidateStruct_ReportaCampoYTag(t *testing.T) {
	errs := validator.ValidateStruct(sampleDTO{
		Name: "",
		Date: "01/03/2025",
		ID:   "no-es-uuid",
	})

	require.Len(t, errs, 3)
	fields := map[string]string{}
	for _, fe := range errs {
		fields[fe.Field] = fe.Tag
	}
	assert.Equal(t, "required", fields["Name"])
	assert.Equal(t, "fecha", fields["Date"])
	assert.Equal(t, "uuid4", fields["ID"])
}

func TestParseDate(t *testing.T) {
	d, err := validator.ParseDate("2025-03-01")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-01", validator.FormatDate(d))

	_, err = validator.ParseDate("2025-13-40")
	assert.Error(t, err)
}

func TestIsUUID(t *testing.T) {
	assert.True(t, validator.IsUUID("8f14e45f-ceea-467f-a187-5cedb1a5ad12"))
	assert.False(t, validator.IsUUID("abc"))
}
