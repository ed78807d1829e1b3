package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsanmartinc/puntoventa-api/internal/application/inventory"
	"github.com/jsanmartinc/puntoventa-api/internal/domain"
	"github.com/jsanmartinc/puntoventa-api/internal/domain/entity"
	"github.com/jsanmartinc/puntoventa-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. Replican el contrato de los repos de PostgreSQL:
// updates relativos/condicionales sobre el stock y (nil, nil) para ausentes.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStockRepo struct {
	stocks map[string]decimal.Decimal
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{stocks: make(map[string]decimal.Decimal)}
}

func (f *fakeStockRepo) Get(productID string) (decimal.Decimal, bool, error) {
	qty, ok := f.stocks[productID]
	return qty, ok, nil
}

func (f *fakeStockRepo) Adjust(productID string, delta decimal.Decimal) error {
	current, ok := f.stocks[productID]
	if !ok {
		return domain.ErrProductNotFound
	}
	f.stocks[productID] = current.Add(delta)
	return nil
}

func (f *fakeStockRepo) ConsumeIfAvailable(productID string, qty decimal.Decimal) error {
	current, ok := f.stocks[productID]
	if !ok {
		return domain.ErrProductNotFound
	}
	if current.LessThan(qty) {
		return domain.ErrInsufficientStock
	}
	f.stocks[productID] = current.Sub(qty)
	return nil
}

func (f *fakeStockRepo) snapshot() map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(f.stocks))
	for k, v := range f.stocks {
		out[k] = v
	}
	return out
}

type fakePackRepo struct {
	packs map[string]*entity.Pack
}

func newFakePackRepo() *fakePackRepo {
	return &fakePackRepo{packs: make(map[string]*entity.Pack)}
}

func (f *fakePackRepo) Create(p *entity.Pack) error { f.packs[p.ID] = p; return nil }
func (f *fakePackRepo) GetByID(id string) (*entity.Pack, error) {
	return f.packs[id], nil
}
func (f *fakePackRepo) List() ([]*entity.Pack, error) {
	var out []*entity.Pack
	for _, p := range f.packs {
		out = append(out, p)
	}
	return out, nil
}
func (f *fakePackRepo) Update(p *entity.Pack) error { f.packs[p.ID] = p; return nil }
func (f *fakePackRepo) Delete(id string) error      { delete(f.packs, id); return nil }
func (f *fakePackRepo) Exists(id string) (bool, error) {
	_, ok := f.packs[id]
	return ok, nil
}

type fakePackItemRepo struct {
	items []*entity.PackItem
}

func (f *fakePackItemRepo) Create(it *entity.PackItem) error {
	f.items = append(f.items, it)
	return nil
}
func (f *fakePackItemRepo) GetByID(id string) (*entity.PackItem, error) {
	for _, it := range f.items {
		if it.ID == id {
			return it, nil
		}
	}
	return nil, nil
}
func (f *fakePackItemRepo) GetByPackAndProduct(packID, productID string) (*entity.PackItem, error) {
	for _, it := range f.items {
		if it.PackID == packID && it.ProductID == productID {
			return it, nil
		}
	}
	return nil, nil
}
func (f *fakePackItemRepo) List() ([]*entity.PackItem, error) { return f.items, nil }
func (f *fakePackItemRepo) ListByPack(packID string) ([]*entity.PackItem, error) {
	var out []*entity.PackItem
	for _, it := range f.items {
		if it.PackID == packID {
			out = append(out, it)
		}
	}
	return out, nil
}
func (f *fakePackItemRepo) Update(it *entity.PackItem) error {
	for i, existing := range f.items {
		if existing.ID == it.ID {
			f.items[i] = it
		}
	}
	return nil
}
func (f *fakePackItemRepo) Delete(id string) error {
	out := f.items[:0]
	for _, it := range f.items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	f.items = out
	return nil
}

type fakeExpenseItemRepo struct{}

func (fakeExpenseItemRepo) Create(*entity.ExpenseItem) error { return nil }
func (fakeExpenseItemRepo) GetByID(string) (*entity.ExpenseItem, error) {
	return nil, nil
}
func (fakeExpenseItemRepo) ListByExpense(string) ([]*entity.ExpenseItem, error) {
	return nil, nil
}
func (fakeExpenseItemRepo) Delete(string) error { return nil }

// fakeTxRunner simula la semántica transaccional: toma un snapshot del stock
// antes de ejecutar fn y lo restaura si fn falla (rollback).
type fakeTxRunner struct {
	stockRepo    *fakeStockRepo
	packItemRepo *fakePackItemRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	stockRepo repository.StockRepository,
	packItemRepo repository.PackItemRepository,
	expenseItemRepo repository.ExpenseItemRepository,
) error) error {
	before := r.stockRepo.snapshot()
	if err := fn(r.stockRepo, r.packItemRepo, fakeExpenseItemRepo{}); err != nil {
		r.stockRepo.stocks = before
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Libro de stock de producto individual
// ──────────────────────────────────────────────────────────────────────────────

func TestSellProduct_StockSuficiente(t *testing.T) {
	stockRepo := newFakeStockRepo()
	stockRepo.stocks["prod-1"] = decimal.NewFromInt(5)
	uc := inventory.NewStockUseCase(stockRepo)

	err := uc.SellProduct("prod-1", decimal.NewFromInt(3))

	require.NoError(t, err)
	qty, _, _ := stockRepo.Get("prod-1")
	assert.True(t, qty.Equal(decimal.NewFromInt(2)), "stock' debe ser stock - qty")
}

func TestSellProduct_StockInsuficiente(t *testing.T) {
	stockRepo := newFakeStockRepo()
	stockRepo.stocks["prod-1"] = decimal.NewFromInt(5)
	uc := inventory.NewStockUseCase(stockRepo)

	err := uc.SellProduct("prod-1", decimal.NewFromInt(7))

	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	qty, _, _ := stockRepo.Get("prod-1")
	assert.True(t, qty.Equal(decimal.NewFromInt(5)), "una venta rechazada no debe mutar el stock")
}

func TestSellProduct_CantidadInvalida(t *testing.T) {
	uc := inventory.NewStockUseCase(newFakeStockRepo())

	err := uc.SellProduct("prod-1", decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = uc.SellProduct("prod-1", decimal.NewFromInt(-2))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSellProduct_ProductoInexistente(t *testing.T) {
	uc := inventory.NewStockUseCase(newFakeStockRepo())

	err := uc.SellProduct("no-existe", decimal.NewFromInt(1))
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestHasSufficientStock_FallaCerrado(t *testing.T) {
	uc := inventory.NewStockUseCase(newFakeStockRepo())

	ok, err := uc.HasSufficientStock("no-existe", decimal.NewFromInt(1))

	require.NoError(t, err)
	assert.False(t, ok, "producto inexistente cuenta como stock insuficiente")
}

func TestHasSufficientStock_Limite(t *testing.T) {
	stockRepo := newFakeStockRepo()
	stockRepo.stocks["prod-1"] = decimal.NewFromInt(5)
	uc := inventory.NewStockUseCase(stockRepo)

	ok, err := uc.HasSufficientStock("prod-1", decimal.NewFromInt(5))
	require.NoError(t, err)
	assert.True(t, ok, "stock == qty es suficiente")

	ok, err = uc.HasSufficientStock("prod-1", decimal.NewFromInt(6))
	require.NoError(t, err)
	assert.False(t, ok)
}

// ──────────────────────────────────────────────────────────────────────────────
// Packs como receta
// ──────────────────────────────────────────────────────────────────────────────

func buildPackFixture(t *testing.T) (*inventory.PackStockUseCase, *fakeStockRepo) {
	t.Helper()
	stockRepo := newFakeStockRepo()
	packRepo := newFakePackRepo()
	packItemRepo := &fakePackItemRepo{}
	runner := &fakeTxRunner{stockRepo: stockRepo, packItemRepo: packItemRepo}

	// Escenario de referencia: Widget con stock 5, un pack Combo que
	// requiere 2 Widgets por unidad.
	stockRepo.stocks["widget"] = decimal.NewFromInt(5)
	require.NoError(t, packRepo.Create(&entity.Pack{ID: "combo", Name: "Combo"}))
	require.NoError(t, packItemRepo.Create(&entity.PackItem{
		ID: "line-1", PackID: "combo", ProductID: "widget", Quantity: 2,
	}))

	return inventory.NewPackStockUseCase(runner, packRepo, packItemRepo, stockRepo), stockRepo
}

func TestPackHasSufficientStock_Agregado(t *testing.T) {
	uc, _ := buildPackFixture(t)

	// 3 packs requieren 6 widgets y solo hay 5
	ok, err := uc.HasSufficientStock("combo", 3)
	require.NoError(t, err)
	assert.False(t, ok)

	// 2 packs requieren 4 widgets y hay 5
	ok, err = uc.HasSufficientStock("combo", 2)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPackHasSufficientStock_PackInexistente(t *testing.T) {
	uc, _ := buildPackFixture(t)

	_, err := uc.HasSufficientStock("no-existe", 1)
	assert.ErrorIs(t, err, domain.ErrPackNotFound)
}

func TestPackHasSufficientStock_PackVacio(t *testing.T) {
	stockRepo := newFakeStockRepo()
	packRepo := newFakePackRepo()
	packItemRepo := &fakePackItemRepo{}
	runner := &fakeTxRunner{stockRepo: stockRepo, packItemRepo: packItemRepo}
	require.NoError(t, packRepo.Create(&entity.Pack{ID: "vacio", Name: "Vacío"}))
	uc := inventory.NewPackStockUseCase(runner, packRepo, packItemRepo, stockRepo)

	ok, err := uc.HasSufficientStock("vacio", 10)

	require.NoError(t, err)
	assert.True(t, ok, "un pack sin líneas pasa trivialmente")
}

func TestPackConsume_DescuentaTodasLasLineas(t *testing.T) {
	uc, stockRepo := buildPackFixture(t)

	err := uc.Consume(context.Background(), "combo", 2)

	require.NoError(t, err)
	qty, _, _ := stockRepo.Get("widget")
	assert.True(t, qty.Equal(decimal.NewFromInt(1)), "5 - 2×2 = 1")
}

func TestPackConsume_TodoONada(t *testing.T) {
	stockRepo := newFakeStockRepo()
	packRepo := newFakePackRepo()
	packItemRepo := &fakePackItemRepo{}
	runner := &fakeTxRunner{stockRepo: stockRepo, packItemRepo: packItemRepo}

	// Dos constituyentes: el primero alcanza, el segundo no. El consumo del
	// primero debe revertirse cuando el segundo falla.
	stockRepo.stocks["abundante"] = decimal.NewFromInt(100)
	stockRepo.stocks["escaso"] = decimal.NewFromInt(1)
	require.NoError(t, packRepo.Create(&entity.Pack{ID: "mixto", Name: "Mixto"}))
	require.NoError(t, packItemRepo.Create(&entity.PackItem{
		ID: "line-a", PackID: "mixto", ProductID: "abundante", Quantity: 1,
	}))
	require.NoError(t, packItemRepo.Create(&entity.PackItem{
		ID: "line-b", PackID: "mixto", ProductID: "escaso", Quantity: 2,
	}))
	uc := inventory.NewPackStockUseCase(runner, packRepo, packItemRepo, stockRepo)

	err := uc.Consume(context.Background(), "mixto", 1)

	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	abundante, _, _ := stockRepo.Get("abundante")
	escaso, _, _ := stockRepo.Get("escaso")
	assert.True(t, abundante.Equal(decimal.NewFromInt(100)), "el faltante de una línea revierte las demás")
	assert.True(t, escaso.Equal(decimal.NewFromInt(1)))
}

func TestPackConsume_PackInexistente(t *testing.T) {
	uc, _ := buildPackFixture(t)

	err := uc.Consume(context.Background(), "no-existe", 1)
	assert.ErrorIs(t, err, domain.ErrPackNotFound)
}

func TestPackConsume_CantidadInvalida(t *testing.T) {
	uc, _ := buildPackFixture(t)

	err := uc.Consume(context.Background(), "combo", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExpand_PackInexistente(t *testing.T) {
	uc, _ := buildPackFixture(t)

	_, err := uc.Expand("no-existe")
	assert.ErrorIs(t, err, domain.ErrPackNotFound)
}
