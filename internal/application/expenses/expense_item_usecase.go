package expenses

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jsanmartinc/puntoventa-api/internal/application/dto"
	"github.com/jsanmartinc/puntoventa-api/internal/application/inventory"
	"github.com/jsanmartinc/puntoventa-api/internal/domain"
	"github.com/jsanmartinc/puntoventa-api/internal/domain/entity"
	"github.com/jsanmartinc/puntoventa-api/internal/domain/repository"
)

// ExpenseItemUseCase acopla la creación/borrado de una línea de compra con
// el aumento/reversa del stock del producto. La línea y el ajuste viajan en
// una misma transacción: o persisten ambos o ninguno.
type ExpenseItemUseCase struct {
	txRunner        inventory.TxRunner
	expenseRepo     repository.ExpenseRepository
	expenseItemRepo repository.ExpenseItemRepository
	productRepo     repository.ProductRepository
}

// NewExpenseItemUseCase construye el caso de uso.
func NewExpenseItemUseCase(
	txRunner inventory.TxRunner,
	expenseRepo repository.ExpenseRepository,
	expenseItemRepo repository.ExpenseItemRepository,
	productRepo repository.ProductRepository,
) *ExpenseItemUseCase {
	return &ExpenseItemUseCase{
		txRunner:        txRunner,
		expenseRepo:     expenseRepo,
		expenseItemRepo: expenseItemRepo,
		productRepo:     productRepo,
	}
}

// Create verifica gasto y producto, calcula el subtotal en el servidor y, en
// una transacción, inserta la línea y suma Quantity al stock del producto.
// Los errores de existencia conservan su sujeto (gasto vs. producto) en vez
// de colapsar en un error genérico de creación.
func (uc *ExpenseItemUseCase) Create(ctx context.Context, in dto.CreateExpenseItemRequest) (*dto.ExpenseItemResponse, error) {
	if in.Quantity < 1 || in.UnitPrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	exists, err := uc.expenseRepo.Exists(in.ExpenseID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrExpenseNotFound
	}
	prodExists, err := uc.productRepo.Exists(in.ProductID)
	if err != nil {
		return nil, err
	}
	if !prodExists {
		return nil, domain.ErrProductNotFound
	}

	qty := decimal.NewFromInt(int64(in.Quantity))
	item := &entity.ExpenseItem{
		ID:        uuid.New().String(),
		ExpenseID: in.ExpenseID,
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		UnitPrice: in.UnitPrice,
		Subtotal:  qty.Mul(in.UnitPrice),
		CreatedAt: time.Now(),
	}

	err = uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		_ repository.PackItemRepository,
		expenseItemRepo repository.ExpenseItemRepository,
	) error {
		if err := expenseItemRepo.Create(item); err != nil {
			return err
		}
		return stockRepo.Adjust(in.ProductID, qty)
	})
	if err != nil {
		return nil, err
	}
	return toExpenseItemResponse(item), nil
}

// Delete elimina la línea y revierte exactamente el aumento de stock de la
// creación (inversa idempotente), en una sola transacción.
func (uc *ExpenseItemUseCase) Delete(ctx context.Context, id string) error {
	item, err := uc.expenseItemRepo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	prodExists, err := uc.productRepo.Exists(item.ProductID)
	if err != nil {
		return err
	}
	if !prodExists {
		return domain.ErrProductNotFound
	}

	qty := decimal.NewFromInt(int64(item.Quantity))
	return uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		_ repository.PackItemRepository,
		expenseItemRepo repository.ExpenseItemRepository,
	) error {
		if err := expenseItemRepo.Delete(item.ID); err != nil {
			return err
		}
		return stockRepo.Adjust(item.ProductID, qty.Neg())
	})
}

// ListByExpense lista las líneas de un gasto existente.
func (uc *ExpenseItemUseCase) ListByExpense(expenseID string) ([]dto.ExpenseItemResponse, error) {
	exists, err := uc.expenseRepo.Exists(expenseID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrExpenseNotFound
	}
	list, err := uc.expenseItemRepo.ListByExpense(expenseID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ExpenseItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toExpenseItemResponse(it))
	}
	return items, nil
}

func toExpenseItemResponse(it *entity.ExpenseItem) *dto.ExpenseItemResponse {
	return &dto.ExpenseItemResponse{
		ID:        it.ID,
		ExpenseID: it.ExpenseID,
		ProductID: it.ProductID,
		Quantity:  it.Quantity,
		UnitPrice: it.UnitPrice,
		Subtotal:  it.Subtotal,
		CreatedAt: it.CreatedAt,
	}
}
