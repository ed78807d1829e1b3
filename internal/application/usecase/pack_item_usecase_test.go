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

func buildPackItemFixture(t *testing.T) (*usecase.PackItemUseCase, *fakePackItemRepo) {
	t.Helper()
	itemRepo := &fakePackItemRepo{}
	packRepo := newFakePackRepo()
	productRepo := newFakeProductRepo()

	require.NoError(t, packRepo.Create(&entity.Pack{ID: "pack-a", Name: "A"}))
	require.NoError(t, productRepo.Create(&entity.Product{ID: "prod-x", Name: "X"}))

	return usecase.NewPackItemUseCase(itemRepo, packRepo, productRepo), itemRepo
}

// El POST de pack-items hace upsert con merge: crear (A, X, 3) sobre una
// línea existente (A, X, 2) deja una sola fila con cantidad 5.
func TestPackItemCreate_MergeDeCantidades(t *testing.T) {
	uc, itemRepo := buildPackItemFixture(t)

	first, err := uc.Create(dto.CreatePackItemRequest{
		PackID: "pack-a", ProductID: "prod-x", Quantity: 2,
	})
	require.NoError(t, err)

	second, err := uc.Create(dto.CreatePackItemRequest{
		PackID: "pack-a", ProductID: "prod-x", Quantity: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "el merge reusa la fila existente")
	assert.Equal(t, 5, second.Quantity)

	all, _ := itemRepo.ListByPack("pack-a")
	require.Len(t, all, 1, "a lo sumo una línea por par (pack, producto)")
	assert.Equal(t, 5, all[0].Quantity)
}

func TestPackItemCreate_PackInexistente(t *testing.T) {
	uc, _ := buildPackItemFixture(t)

	_, err := uc.Create(dto.CreatePackItemRequest{
		PackID: "no-existe", ProductID: "prod-x", Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrPackNotFound)
}

func TestPackItemCreate_ProductoInexistente(t *testing.T) {
	uc, _ := buildPackItemFixture(t)

	_, err := uc.Create(dto.CreatePackItemRequest{
		PackID: "pack-a", ProductID: "no-existe", Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

// El PUT reemplaza la cantidad sin merge.
func TestPackItemReplace_SinMerge(t *testing.T) {
	uc, _ := buildPackItemFixture(t)

	created, err := uc.Create(dto.CreatePackItemRequest{
		PackID: "pack-a", ProductID: "prod-x", Quantity: 2,
	})
	require.NoError(t, err)

	replaced, err := uc.Replace(created.ID, dto.UpdatePackItemRequest{Quantity: 7})
	require.NoError(t, err)
	assert.Equal(t, 7, replaced.Quantity, "PUT fija la cantidad, no la suma")
}

func TestPackItemDelete_Inexistente(t *testing.T) {
	uc, _ := buildPackItemFixture(t)

	err := uc.Delete("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
