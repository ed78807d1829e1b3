package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jsanmartinc/puntoventa-api/internal/domain/entity"
	"github.com/jsanmartinc/puntoventa-api/internal/domain/repository"
)

var _ repository.ItemTypeRepository = (*ItemTypeRepo)(nil)

// ItemTypeRepo registro de tipos de item sobre PostgreSQL.
type ItemTypeRepo struct {
	q Querier
}

// NewItemTypeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewItemTypeRepository(q Querier) *ItemTypeRepo {
	return &ItemTypeRepo{q: q}
}

// Create persiste un tipo de item.
func (r *ItemTypeRepo) Create(it *entity.ItemType) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO item_types (id, name, created_at, updated_at) VALUES ($1, $2, $3, $4)`,
		it.ID, it.Name, it.CreatedAt, it.UpdatedAt,
	)
	if err != nil {
		return mapConstraintError(fmt.Errorf("insert item type: %w", err))
	}
	return nil
}

// GetByID obtiene un tipo de item; (nil, nil) si no existe.
func (r *ItemTypeRepo) GetByID(id string) (*entity.ItemType, error) {
	return r.getOne(`SELECT id, name, created_at, updated_at FROM item_types WHERE id = $1`, id)
}

// GetByName obtiene un tipo de item por nombre; (nil, nil) si no existe.
func (r *ItemTypeRepo) GetByName(name string) (*entity.ItemType, error) {
	return r.getOne(`SELECT id, name, created_at, updated_at FROM item_types WHERE name = $1`, name)
}

func (r *ItemTypeRepo) getOne(query string, arg any) (*entity.ItemType, error) {
	var it entity.ItemType
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&it.ID, &it.Name, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item type: %w", err)
	}
	return &it, nil
}

// List lista el registro completo.
func (r *ItemTypeRepo) List() ([]*entity.ItemType, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, created_at, updated_at FROM item_types ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list item types: %w", err)
	}
	defer rows.Close()
	var list []*entity.ItemType
	for rows.Next() {
		var it entity.ItemType
		if err := rows.Scan(&it.ID, &it.Name, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item type: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// Update reemplaza el nombre de un tipo de item.
func (r *ItemTypeRepo) Update(it *entity.ItemType) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE item_types SET name = $2, updated_at = $3 WHERE id = $1`,
		it.ID, it.Name, it.UpdatedAt,
	)
	if err != nil {
		return mapConstraintError(fmt.Errorf("update item type: %w", err))
	}
	return nil
}

// Delete elimina un tipo de item por ID.
func (r *ItemTypeRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM item_types WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item type: %w", err)
	}
	return nil
}
