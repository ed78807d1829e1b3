package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jsanmartinc/puntoventa-api/internal/domain/entity"
	"github.com/jsanmartinc/puntoventa-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo ventas (encabezados) sobre PostgreSQL.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste una venta.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (id, date, total, payment_method_id, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.Date, order.Total, order.PaymentMethodID, order.CreatedAt,
	)
	if err != nil {
		return mapConstraintError(fmt.Errorf("insert order: %w", err))
	}
	return nil
}

// GetByID obtiene una venta; (nil, nil) si no existe.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	var o entity.Order
	err := r.q.QueryRow(context.Background(),
		`SELECT id, date, total, payment_method_id, created_at FROM orders WHERE id = $1`, id,
	).Scan(&o.ID, &o.Date, &o.Total, &o.PaymentMethodID, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// List lista todas las ventas, más recientes primero.
func (r *OrderRepo) List() ([]*entity.Order, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, date, total, payment_method_id, created_at FROM orders ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.Date, &o.Total, &o.PaymentMethodID, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// Delete elimina una venta por ID.
func (r *OrderRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

// Exists verifica existencia sin traer la fila completa.
func (r *OrderRepo) Exists(id string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM orders WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("order exists: %w", err)
	}
	return exists, nil
}

var _ repository.DetailOrderRepository = (*DetailOrderRepo)(nil)

// DetailOrderRepo líneas de venta sobre PostgreSQL. El kind del item viaja
// en la columna item_type como nombre del enum cerrado.
type DetailOrderRepo struct {
	q Querier
}

// NewDetailOrderRepository construye el adaptador. Pasar pool o tx.
func NewDetailOrderRepository(q Querier) *DetailOrderRepo {
	return &DetailOrderRepo{q: q}
}

const detailOrderColumns = `id, order_id, item_type, item_id, quantity, unit_price, total_price, created_at`

// Create persiste una línea de venta.
func (r *DetailOrderRepo) Create(d *entity.DetailOrder) error {
	query := `
		INSERT INTO detail_orders (id, order_id, item_type, item_id, quantity, unit_price, total_price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.OrderID, string(d.Item.Kind), d.Item.ID,
		d.Quantity, d.UnitPrice, d.TotalPrice, d.CreatedAt,
	)
	if err != nil {
		return mapConstraintError(fmt.Errorf("insert detail order: %w", err))
	}
	return nil
}

// GetByID obtiene una línea de venta; (nil, nil) si no existe.
func (r *DetailOrderRepo) GetByID(id string) (*entity.DetailOrder, error) {
	var d entity.DetailOrder
	var kind string
	err := r.q.QueryRow(context.Background(),
		`SELECT `+detailOrderColumns+` FROM detail_orders WHERE id = $1`, id,
	).Scan(&d.ID, &d.OrderID, &kind, &d.Item.ID, &d.Quantity, &d.UnitPrice, &d.TotalPrice, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get detail order: %w", err)
	}
	d.Item.Kind = entity.ItemKind(kind)
	return &d, nil
}

// List lista todas las líneas de venta.
func (r *DetailOrderRepo) List() ([]*entity.DetailOrder, error) {
	return r.listQuery(`SELECT ` + detailOrderColumns + ` FROM detail_orders ORDER BY created_at DESC`)
}

// ListByOrder lista las líneas de una venta.
func (r *DetailOrderRepo) ListByOrder(orderID string) ([]*entity.DetailOrder, error) {
	return r.listQuery(`SELECT `+detailOrderColumns+` FROM detail_orders WHERE order_id = $1`, orderID)
}

func (r *DetailOrderRepo) listQuery(query string, args ...any) ([]*entity.DetailOrder, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list detail orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.DetailOrder
	for rows.Next() {
		var d entity.DetailOrder
		var kind string
		if err := rows.Scan(&d.ID, &d.OrderID, &kind, &d.Item.ID, &d.Quantity,
			&d.UnitPrice, &d.TotalPrice, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan detail order: %w", err)
		}
		d.Item.Kind = entity.ItemKind(kind)
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Delete elimina una línea de venta por ID.
func (r *DetailOrderRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM detail_orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete detail order: %w", err)
	}
	return nil
}
