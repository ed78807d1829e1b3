package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/jsanmartinc/puntoventa-api/internal/domain"
	"github.com/jsanmartinc/puntoventa-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo libro de stock sobre la columna stock de products (usable con
// pool o tx). Toda mutación es una sentencia relativa o condicional, nunca
// read-modify-write en aplicación.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene el stock actual; found=false si el producto no existe.
func (r *StockRepo) Get(productID string) (decimal.Decimal, bool, error) {
	var qty decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT stock FROM products WHERE id = $1`, productID,
	).Scan(&qty)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, false, nil
		}
		return decimal.Zero, false, fmt.Errorf("get stock: %w", err)
	}
	return qty, true, nil
}

// Adjust aplica stock := stock + delta como update relativo en una sola
// sentencia, evitando lost updates entre lecturas concurrentes.
func (r *StockRepo) Adjust(productID string, delta decimal.Decimal) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock = stock + $2, updated_at = now() WHERE id = $1`,
		productID, delta,
	)
	if err != nil {
		return fmt.Errorf("adjust stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// ConsumeIfAvailable descuenta qty solo si alcanza: la verificación y el
// decremento son una única sentencia condicional, serializada a nivel de
// fila por el store. RowsAffected distingue el resultado.
func (r *StockRepo) ConsumeIfAvailable(productID string, qty decimal.Decimal) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock = stock - $2, updated_at = now()
		 WHERE id = $1 AND stock >= $2`,
		productID, qty,
	)
	if err != nil {
		return fmt.Errorf("consume stock: %w", err)
	}
	if cmd.RowsAffected() > 0 {
		return nil
	}
	// Cero filas: o el producto no existe o no alcanza el stock.
	_, found, err := r.Get(productID)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrProductNotFound
	}
	return domain.ErrInsufficientStock
}
