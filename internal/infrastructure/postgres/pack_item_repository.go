package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jsanmartinc/puntoventa-api/internal/domain/entity"
	"github.com/jsanmartinc/puntoventa-api/internal/domain/repository"
)

var _ repository.PackItemRepository = (*PackItemRepo)(nil)

// PackItemRepo líneas de receta sobre PostgreSQL (usable con pool o tx).
type PackItemRepo struct {
	q Querier
}

// NewPackItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPackItemRepository(q Querier) *PackItemRepo {
	return &PackItemRepo{q: q}
}

const packItemColumns = `id, pack_id, product_id, quantity, created_at, updated_at`

// Create persiste una línea de receta.
func (r *PackItemRepo) Create(item *entity.PackItem) error {
	query := `
		INSERT INTO pack_items (id, pack_id, product_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.PackID, item.ProductID, item.Quantity, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return mapConstraintError(fmt.Errorf("insert pack item: %w", err))
	}
	return nil
}

// GetByID obtiene una línea; (nil, nil) si no existe.
func (r *PackItemRepo) GetByID(id string) (*entity.PackItem, error) {
	return r.getOne(`SELECT `+packItemColumns+` FROM pack_items WHERE id = $1`, id)
}

// GetByPackAndProduct obtiene la línea del par (pack, producto); (nil, nil)
// si no existe. Soporta el merge de cantidades en la creación.
func (r *PackItemRepo) GetByPackAndProduct(packID, productID string) (*entity.PackItem, error) {
	return r.getOne(
		`SELECT `+packItemColumns+` FROM pack_items WHERE pack_id = $1 AND product_id = $2`,
		packID, productID,
	)
}

func (r *PackItemRepo) getOne(query string, args ...any) (*entity.PackItem, error) {
	var it entity.PackItem
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&it.ID, &it.PackID, &it.ProductID, &it.Quantity, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pack item: %w", err)
	}
	return &it, nil
}

// List lista todas las líneas de receta.
func (r *PackItemRepo) List() ([]*entity.PackItem, error) {
	return r.listQuery(`SELECT ` + packItemColumns + ` FROM pack_items ORDER BY created_at DESC`)
}

// ListByPack lista las líneas de un pack.
func (r *PackItemRepo) ListByPack(packID string) ([]*entity.PackItem, error) {
	return r.listQuery(`SELECT `+packItemColumns+` FROM pack_items WHERE pack_id = $1`, packID)
}

func (r *PackItemRepo) listQuery(query string, args ...any) ([]*entity.PackItem, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list pack items: %w", err)
	}
	defer rows.Close()
	var list []*entity.PackItem
	for rows.Next() {
		var it entity.PackItem
		if err := rows.Scan(&it.ID, &it.PackID, &it.ProductID, &it.Quantity, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan pack item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// Update actualiza la cantidad de una línea.
func (r *PackItemRepo) Update(item *entity.PackItem) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE pack_items SET quantity = $2, updated_at = $3 WHERE id = $1`,
		item.ID, item.Quantity, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update pack item: %w", err)
	}
	return nil
}

// Delete elimina una línea de receta por ID.
func (r *PackItemRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM pack_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete pack item: %w", err)
	}
	return nil
}
