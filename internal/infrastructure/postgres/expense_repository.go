package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jsanmartinc/puntoventa-api/internal/domain/entity"
	"github.com/jsanmartinc/puntoventa-api/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo gastos sobre PostgreSQL (usable con pool o tx).
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

const expenseColumns = `id, date, total, location, payment_method_id, notes, created_at`

// Create persiste un gasto.
func (r *ExpenseRepo) Create(expense *entity.Expense) error {
	query := `
		INSERT INTO expenses (id, date, total, location, payment_method_id, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		expense.ID, expense.Date, expense.Total, expense.Location,
		expense.PaymentMethodID, expense.Notes, expense.CreatedAt,
	)
	if err != nil {
		return mapConstraintError(fmt.Errorf("insert expense: %w", err))
	}
	return nil
}

// GetByID obtiene un gasto; (nil, nil) si no existe.
func (r *ExpenseRepo) GetByID(id string) (*entity.Expense, error) {
	var e entity.Expense
	err := r.q.QueryRow(context.Background(),
		`SELECT `+expenseColumns+` FROM expenses WHERE id = $1`, id,
	).Scan(&e.ID, &e.Date, &e.Total, &e.Location, &e.PaymentMethodID, &e.Notes, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get expense: %w", err)
	}
	return &e, nil
}

// List lista todos los gastos, más recientes primero.
func (r *ExpenseRepo) List() ([]*entity.Expense, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+expenseColumns+` FROM expenses ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Expense
	for rows.Next() {
		var e entity.Expense
		if err := rows.Scan(&e.ID, &e.Date, &e.Total, &e.Location,
			&e.PaymentMethodID, &e.Notes, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Delete elimina un gasto por ID.
func (r *ExpenseRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	return nil
}

// Exists verifica existencia sin traer la fila completa.
func (r *ExpenseRepo) Exists(id string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM expenses WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("expense exists: %w", err)
	}
	return exists, nil
}

var _ repository.ExpenseItemRepository = (*ExpenseItemRepo)(nil)

// ExpenseItemRepo líneas de compra sobre PostgreSQL. Se usa dentro de la
// transacción que acopla la línea con el ajuste de stock.
type ExpenseItemRepo struct {
	q Querier
}

// NewExpenseItemRepository construye el adaptador. Pasar pool o tx.
func NewExpenseItemRepository(q Querier) *ExpenseItemRepo {
	return &ExpenseItemRepo{q: q}
}

const expenseItemColumns = `id, expense_id, product_id, quantity, unit_price, subtotal, created_at`

// Create persiste una línea de compra.
func (r *ExpenseItemRepo) Create(item *entity.ExpenseItem) error {
	query := `
		INSERT INTO expense_items (id, expense_id, product_id, quantity, unit_price, subtotal, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.ExpenseID, item.ProductID, item.Quantity,
		item.UnitPrice, item.Subtotal, item.CreatedAt,
	)
	if err != nil {
		return mapConstraintError(fmt.Errorf("insert expense item: %w", err))
	}
	return nil
}

// GetByID obtiene una línea de compra; (nil, nil) si no existe.
func (r *ExpenseItemRepo) GetByID(id string) (*entity.ExpenseItem, error) {
	var it entity.ExpenseItem
	err := r.q.QueryRow(context.Background(),
		`SELECT `+expenseItemColumns+` FROM expense_items WHERE id = $1`, id,
	).Scan(&it.ID, &it.ExpenseID, &it.ProductID, &it.Quantity, &it.UnitPrice, &it.Subtotal, &it.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get expense item: %w", err)
	}
	return &it, nil
}

// ListByExpense lista las líneas de un gasto.
func (r *ExpenseItemRepo) ListByExpense(expenseID string) ([]*entity.ExpenseItem, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+expenseItemColumns+` FROM expense_items WHERE expense_id = $1`, expenseID)
	if err != nil {
		return nil, fmt.Errorf("list expense items: %w", err)
	}
	defer rows.Close()
	var list []*entity.ExpenseItem
	for rows.Next() {
		var it entity.ExpenseItem
		if err := rows.Scan(&it.ID, &it.ExpenseID, &it.ProductID, &it.Quantity,
			&it.UnitPrice, &it.Subtotal, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan expense item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// Delete elimina una línea de compra por ID.
func (r *ExpenseItemRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM expense_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete expense item: %w", err)
	}
	return nil
}
