package expenses_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsanmartinc/puntoventa-api/internal/application/dto"
	"github.com/jsanmartinc/puntoventa-api/internal/application/expenses"
	"github.com/jsanmartinc/puntoventa-api/internal/domain"
	"github.com/jsanmartinc/puntoventa-api/internal/domain/entity"
	"github.com/jsanmartinc/puntoventa-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeExpenseRepo struct {
	expenses map[string]*entity.Expense
}

func newFakeExpenseRepo() *fakeExpenseRepo {
	return &fakeExpenseRepo{expenses: make(map[string]*entity.Expense)}
}

func (f *fakeExpenseRepo) Create(e *entity.Expense) error { f.expenses[e.ID] = e; return nil }
func (f *fakeExpenseRepo) GetByID(id string) (*entity.Expense, error) {
	return f.expenses[id], nil
}
func (f *fakeExpenseRepo) List() ([]*entity.Expense, error) {
	var out []*entity.Expense
	for _, e := range f.expenses {
		out = append(out, e)
	}
	return out, nil
}
func (f *fakeExpenseRepo) Delete(id string) error { delete(f.expenses, id); return nil }
func (f *fakeExpenseRepo) Exists(id string) (bool, error) {
	_, ok := f.expenses[id]
	return ok, nil
}

type fakeExpenseItemRepo struct {
	items map[string]*entity.ExpenseItem
}

func newFakeExpenseItemRepo() *fakeExpenseItemRepo {
	return &fakeExpenseItemRepo{items: make(map[string]*entity.ExpenseItem)}
}

func (f *fakeExpenseItemRepo) Create(it *entity.ExpenseItem) error {
	f.items[it.ID] = it
	return nil
}
func (f *fakeExpenseItemRepo) GetByID(id string) (*entity.ExpenseItem, error) {
	return f.items[id], nil
}
func (f *fakeExpenseItemRepo) ListByExpense(expenseID string) ([]*entity.ExpenseItem, error) {
	var out []*entity.ExpenseItem
	for _, it := range f.items {
		if it.ExpenseID == expenseID {
			out = append(out, it)
		}
	}
	return out, nil
}
func (f *fakeExpenseItemRepo) Delete(id string) error { delete(f.items, id); return nil }

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (f *fakeProductRepo) Create(p *entity.Product) error { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) List() ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}
func (f *fakeProductRepo) Update(p *entity.Product) error { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) Delete(id string) error         { delete(f.products, id); return nil }
func (f *fakeProductRepo) Exists(id string) (bool, error) {
	_, ok := f.products[id]
	return ok, nil
}

// fakeStockRepo muta el stock del producto en el fakeProductRepo, igual que
// el repo real muta la columna stock de products.
type fakeStockRepo struct {
	products *fakeProductRepo
}

func (f *fakeStockRepo) Get(productID string) (decimal.Decimal, bool, error) {
	p, ok := f.products.products[productID]
	if !ok {
		return decimal.Zero, false, nil
	}
	return p.Stock, true, nil
}

func (f *fakeStockRepo) Adjust(productID string, delta decimal.Decimal) error {
	p, ok := f.products.products[productID]
	if !ok {
		return domain.ErrProductNotFound
	}
	p.Stock = p.Stock.Add(delta)
	return nil
}

func (f *fakeStockRepo) ConsumeIfAvailable(productID string, qty decimal.Decimal) error {
	p, ok := f.products.products[productID]
	if !ok {
		return domain.ErrProductNotFound
	}
	if p.Stock.LessThan(qty) {
		return domain.ErrInsufficientStock
	}
	p.Stock = p.Stock.Sub(qty)
	return nil
}

type fakePackItemRepo struct{}

func (fakePackItemRepo) Create(*entity.PackItem) error          { return nil }
func (fakePackItemRepo) GetByID(string) (*entity.PackItem, error) { return nil, nil }
func (fakePackItemRepo) GetByPackAndProduct(string, string) (*entity.PackItem, error) {
	return nil, nil
}
func (fakePackItemRepo) List() ([]*entity.PackItem, error)           { return nil, nil }
func (fakePackItemRepo) ListByPack(string) ([]*entity.PackItem, error) { return nil, nil }
func (fakePackItemRepo) Update(*entity.PackItem) error               { return nil }
func (fakePackItemRepo) Delete(string) error                         { return nil }

type fakeTxRunner struct {
	stockRepo       *fakeStockRepo
	expenseItemRepo *fakeExpenseItemRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	stockRepo repository.StockRepository,
	packItemRepo repository.PackItemRepository,
	expenseItemRepo repository.ExpenseItemRepository,
) error) error {
	return fn(r.stockRepo, fakePackItemRepo{}, r.expenseItemRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	uc          *expenses.ExpenseItemUseCase
	productRepo *fakeProductRepo
	itemRepo    *fakeExpenseItemRepo
}

func buildFixture(t *testing.T) *fixture {
	t.Helper()
	expenseRepo := newFakeExpenseRepo()
	itemRepo := newFakeExpenseItemRepo()
	productRepo := newFakeProductRepo()
	stockRepo := &fakeStockRepo{products: productRepo}
	runner := &fakeTxRunner{stockRepo: stockRepo, expenseItemRepo: itemRepo}

	require.NoError(t, expenseRepo.Create(&entity.Expense{
		ID: "gasto-1", Date: time.Now(), Total: decimal.NewFromInt(50),
	}))
	require.NoError(t, productRepo.Create(&entity.Product{
		ID: "prod-1", Name: "Widget", Stock: decimal.NewFromInt(10),
	}))

	return &fixture{
		uc:          expenses.NewExpenseItemUseCase(runner, expenseRepo, itemRepo, productRepo),
		productRepo: productRepo,
		itemRepo:    itemRepo,
	}
}

func TestCreateExpenseItem_SubtotalYStock(t *testing.T) {
	fx := buildFixture(t)

	out, err := fx.uc.Create(context.Background(), dto.CreateExpenseItemRequest{
		ExpenseID: "gasto-1",
		ProductID: "prod-1",
		Quantity:  5,
		UnitPrice: decimal.NewFromInt(10),
	})

	require.NoError(t, err)
	assert.True(t, out.Subtotal.Equal(decimal.NewFromInt(50)), "subtotal = cantidad × precio unitario")

	p, _ := fx.productRepo.GetByID("prod-1")
	assert.True(t, p.Stock.Equal(decimal.NewFromInt(15)), "la compra suma 5 unidades al stock")
}

func TestDeleteExpenseItem_RevierteStockExacto(t *testing.T) {
	fx := buildFixture(t)

	out, err := fx.uc.Create(context.Background(), dto.CreateExpenseItemRequest{
		ExpenseID: "gasto-1",
		ProductID: "prod-1",
		Quantity:  5,
		UnitPrice: decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	require.NoError(t, fx.uc.Delete(context.Background(), out.ID))

	p, _ := fx.productRepo.GetByID("prod-1")
	assert.True(t, p.Stock.Equal(decimal.NewFromInt(10)), "el borrado restaura el stock original")

	gone, _ := fx.itemRepo.GetByID(out.ID)
	assert.Nil(t, gone, "la línea debe haberse eliminado")
}

func TestCreateExpenseItem_GastoInexistente(t *testing.T) {
	fx := buildFixture(t)

	_, err := fx.uc.Create(context.Background(), dto.CreateExpenseItemRequest{
		ExpenseID: "no-existe",
		ProductID: "prod-1",
		Quantity:  1,
		UnitPrice: decimal.NewFromInt(10),
	})

	assert.ErrorIs(t, err, domain.ErrExpenseNotFound, "el error conserva su sujeto: gasto")
}

func TestCreateExpenseItem_ProductoInexistente(t *testing.T) {
	fx := buildFixture(t)

	_, err := fx.uc.Create(context.Background(), dto.CreateExpenseItemRequest{
		ExpenseID: "gasto-1",
		ProductID: "no-existe",
		Quantity:  1,
		UnitPrice: decimal.NewFromInt(10),
	})

	assert.ErrorIs(t, err, domain.ErrProductNotFound, "el error conserva su sujeto: producto")
}

func TestCreateExpenseItem_EntradaInvalida(t *testing.T) {
	fx := buildFixture(t)

	_, err := fx.uc.Create(context.Background(), dto.CreateExpenseItemRequest{
		ExpenseID: "gasto-1",
		ProductID: "prod-1",
		Quantity:  0,
		UnitPrice: decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = fx.uc.Create(context.Background(), dto.CreateExpenseItemRequest{
		ExpenseID: "gasto-1",
		ProductID: "prod-1",
		Quantity:  1,
		UnitPrice: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDeleteExpenseItem_LineaInexistente(t *testing.T) {
	fx := buildFixture(t)

	err := fx.uc.Delete(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
