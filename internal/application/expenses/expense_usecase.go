package expenses

import (
	"time"

	"github.com/google/uuid"
	"github.com/jsanmartinc/puntoventa-api/internal/application/dto"
	"github.com/jsanmartinc/puntoventa-api/internal/domain"
	"github.com/jsanmartinc/puntoventa-api/internal/domain/entity"
	"github.com/jsanmartinc/puntoventa-api/internal/domain/repository"
	"github.com/jsanmartinc/puntoventa-api/pkg/validator"
)

// ExpenseUseCase CRUD de gastos (eventos de compra/reposición).
type ExpenseUseCase struct {
	expenseRepo repository.ExpenseRepository
	paymentRepo repository.PaymentMethodRepository
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(
	expenseRepo repository.ExpenseRepository,
	paymentRepo repository.PaymentMethodRepository,
) *ExpenseUseCase {
	return &ExpenseUseCase{expenseRepo: expenseRepo, paymentRepo: paymentRepo}
}

// Create registra un gasto. El medio de pago debe existir.
func (uc *ExpenseUseCase) Create(in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	date, err := validator.ParseDate(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	exists, err := uc.paymentRepo.Exists(in.PaymentMethodID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}
	expense := &entity.Expense{
		ID:              uuid.New().String(),
		Date:            date,
		Total:           in.Total,
		Location:        in.Location,
		PaymentMethodID: in.PaymentMethodID,
		Notes:           in.Notes,
		CreatedAt:       time.Now(),
	}
	if err := uc.expenseRepo.Create(expense); err != nil {
		return nil, err
	}
	return toExpenseResponse(expense), nil
}

// GetByID obtiene un gasto; (nil, nil) si no existe.
func (uc *ExpenseUseCase) GetByID(id string) (*dto.ExpenseResponse, error) {
	expense, err := uc.expenseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, nil
	}
	return toExpenseResponse(expense), nil
}

// List lista todos los gastos.
func (uc *ExpenseUseCase) List() ([]dto.ExpenseResponse, error) {
	list, err := uc.expenseRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ExpenseResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toExpenseResponse(e))
	}
	return items, nil
}

// Delete elimina un gasto por ID.
func (uc *ExpenseUseCase) Delete(id string) error {
	exists, err := uc.expenseRepo.Exists(id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrExpenseNotFound
	}
	return uc.expenseRepo.Delete(id)
}

func toExpenseResponse(e *entity.Expense) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:              e.ID,
		Date:            validator.FormatDate(e.Date),
		Total:           e.Total,
		Location:        e.Location,
		PaymentMethodID: e.PaymentMethodID,
		Notes:           e.Notes,
		CreatedAt:       e.CreatedAt,
	}
}
