package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jsanmartinc/puntoventa-api/internal/domain/entity"
	"github.com/jsanmartinc/puntoventa-api/internal/domain/repository"
)

var _ repository.PaymentMethodRepository = (*PaymentMethodRepo)(nil)

// PaymentMethodRepo medios de pago sobre PostgreSQL.
type PaymentMethodRepo struct {
	q Querier
}

// NewPaymentMethodRepository construye el adaptador. Pasar pool o tx.
func NewPaymentMethodRepository(q Querier) *PaymentMethodRepo {
	return &PaymentMethodRepo{q: q}
}

// Create persiste un medio de pago.
func (r *PaymentMethodRepo) Create(pm *entity.PaymentMethod) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO payment_methods (id, name, created_at, updated_at) VALUES ($1, $2, $3, $4)`,
		pm.ID, pm.Name, pm.CreatedAt, pm.UpdatedAt,
	)
	if err != nil {
		return mapConstraintError(fmt.Errorf("insert payment method: %w", err))
	}
	return nil
}

// GetByID obtiene un medio de pago; (nil, nil) si no existe.
func (r *PaymentMethodRepo) GetByID(id string) (*entity.PaymentMethod, error) {
	var pm entity.PaymentMethod
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, created_at, updated_at FROM payment_methods WHERE id = $1`, id,
	).Scan(&pm.ID, &pm.Name, &pm.CreatedAt, &pm.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment method: %w", err)
	}
	return &pm, nil
}

// List lista todos los medios de pago.
func (r *PaymentMethodRepo) List() ([]*entity.PaymentMethod, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, created_at, updated_at FROM payment_methods ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list payment methods: %w", err)
	}
	defer rows.Close()
	var list []*entity.PaymentMethod
	for rows.Next() {
		var pm entity.PaymentMethod
		if err := rows.Scan(&pm.ID, &pm.Name, &pm.CreatedAt, &pm.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan payment method: %w", err)
		}
		list = append(list, &pm)
	}
	return list, rows.Err()
}

// Update actualiza un medio de pago existente.
func (r *PaymentMethodRepo) Update(pm *entity.PaymentMethod) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE payment_methods SET name = $2, updated_at = $3 WHERE id = $1`,
		pm.ID, pm.Name, pm.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update payment method: %w", err)
	}
	return nil
}

// Delete elimina un medio de pago por ID.
func (r *PaymentMethodRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM payment_methods WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete payment method: %w", err)
	}
	return nil
}

// Exists verifica existencia sin traer la fila completa.
func (r *PaymentMethodRepo) Exists(id string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM payment_methods WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("payment method exists: %w", err)
	}
	return exists, nil
}
