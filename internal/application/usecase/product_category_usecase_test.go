package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsanmartinc/puntoventa-api/internal/application/dto"
	"github.com/jsanmartinc/puntoventa-api/internal/application/usecase"
	"github.com/jsanmartinc/puntoventa-api/internal/domain"
	"github.com/jsanmartinc/puntoventa-api/internal/domain/entity"
)

func buildRelFixture(t *testing.T) (*usecase.ProductCategoryUseCase, *fakeRelRepo) {
	t.Helper()
	relRepo := newFakeRelRepo()
	productRepo := newFakeProductRepo()
	categoryRepo := newFakeCategoryRepo()

	require.NoError(t, productRepo.Create(&entity.Product{ID: "p1"}))
	require.NoError(t, productRepo.Create(&entity.Product{ID: "p2"}))
	require.NoError(t, categoryRepo.Create(&entity.Category{ID: "c1"}))
	require.NoError(t, categoryRepo.Create(&entity.Category{ID: "c2"}))

	return usecase.NewProductCategoryUseCase(relRepo, productRepo, categoryRepo), relRepo
}

func TestProductCategoryCreate_Duplicada(t *testing.T) {
	uc, _ := buildRelFixture(t)

	_, err := uc.Create(dto.CreateProductCategoryRequest{ProductID: "p1", CategoryID: "c1"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateProductCategoryRequest{ProductID: "p1", CategoryID: "c1"})
	assert.ErrorIs(t, err, domain.ErrRelationExists)
}

// Mover una relación falla si el par nuevo ya existe, y la verificación va
// antes de cualquier mutación: el par viejo queda intacto.
func TestProductCategoryUpdate_NuevoParYaExiste(t *testing.T) {
	uc, relRepo := buildRelFixture(t)

	_, err := uc.Create(dto.CreateProductCategoryRequest{ProductID: "p1", CategoryID: "c1"})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateProductCategoryRequest{ProductID: "p2", CategoryID: "c2"})
	require.NoError(t, err)

	_, err = uc.Update(dto.UpdateProductCategoryRequest{
		OldProductID: "p1", OldCategoryID: "c1",
		NewProductID: "p2", NewCategoryID: "c2",
	})

	require.ErrorIs(t, err, domain.ErrRelationExists)
	old, _ := relRepo.Get("p1", "c1")
	assert.NotNil(t, old, "sin borrado parcial: la relación vieja sobrevive al fallo")
}

func TestProductCategoryUpdate_ParViejoNoExiste(t *testing.T) {
	uc, _ := buildRelFixture(t)

	_, err := uc.Update(dto.UpdateProductCategoryRequest{
		OldProductID: "p1", OldCategoryID: "c1",
		NewProductID: "p2", NewCategoryID: "c2",
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductCategoryUpdate_MueveLaRelacion(t *testing.T) {
	uc, relRepo := buildRelFixture(t)

	_, err := uc.Create(dto.CreateProductCategoryRequest{ProductID: "p1", CategoryID: "c1"})
	require.NoError(t, err)

	out, err := uc.Update(dto.UpdateProductCategoryRequest{
		OldProductID: "p1", OldCategoryID: "c1",
		NewProductID: "p2", NewCategoryID: "c2",
	})

	require.NoError(t, err)
	assert.Equal(t, "p2", out.ProductID)
	assert.Equal(t, "c2", out.CategoryID)

	old, _ := relRepo.Get("p1", "c1")
	assert.Nil(t, old, "la relación vieja se elimina tras crear la nueva")
}

// El lote omite relaciones ya existentes en vez de fallar completo.
func TestProductCategoryCreateBatch_OmiteExistentes(t *testing.T) {
	uc, relRepo := buildRelFixture(t)

	_, err := uc.Create(dto.CreateProductCategoryRequest{ProductID: "p1", CategoryID: "c1"})
	require.NoError(t, err)

	out, err := uc.CreateBatch(dto.BatchProductCategoryRequest{
		ProductID:   "p1",
		CategoryIDs: []string{"c1", "c2"},
	})

	require.NoError(t, err)
	assert.Len(t, out, 1, "solo se crea la relación nueva")

	rels, _ := relRepo.ListByProduct("p1")
	assert.Len(t, rels, 2)
}
