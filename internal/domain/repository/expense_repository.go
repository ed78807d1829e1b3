package repository

import "github.com/jsanmartinc/puntoventa-api/internal/domain/entity"

// ExpenseRepository puerto de persistencia para Expense (DIP).
type ExpenseRepository interface {
	Create(expense *entity.Expense) error
	GetByID(id string) (*entity.Expense, error)
	List() ([]*entity.Expense, error)
	Delete(id string) error
	Exists(id string) (bool, error)
}

// ExpenseItemRepository puerto de persistencia para líneas de compra.
// Se usa dentro de la transacción que acopla la línea con el ajuste de stock.
type ExpenseItemRepository interface {
	Create(item *entity.ExpenseItem) error
	GetByID(id string) (*entity.ExpenseItem, error)
	ListByExpense(expenseID string) ([]*entity.ExpenseItem, error)
	Delete(id string) error
}
