package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jsanmartinc/puntoventa-api/internal/domain/entity"
	"github.com/jsanmartinc/puntoventa-api/internal/domain/repository"
)

var _ repository.PackRepository = (*PackRepo)(nil)

// PackRepo implementación del puerto PackRepository sobre PostgreSQL.
// GetByID y List embeben las líneas de receta del pack.
type PackRepo struct {
	q Querier
}

// NewPackRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPackRepository(q Querier) *PackRepo {
	return &PackRepo{q: q}
}

const packColumns = `id, name, description, price, picture, active, created_at, updated_at`

// Create persiste un pack.
func (r *PackRepo) Create(pack *entity.Pack) error {
	query := `
		INSERT INTO packs (id, name, description, price, picture, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		pack.ID, pack.Name, pack.Description, pack.Price, pack.Picture,
		pack.Active, pack.CreatedAt, pack.UpdatedAt,
	)
	if err != nil {
		return mapConstraintError(fmt.Errorf("insert pack: %w", err))
	}
	return nil
}

// GetByID obtiene un pack con sus líneas; (nil, nil) si no existe.
func (r *PackRepo) GetByID(id string) (*entity.Pack, error) {
	var p entity.Pack
	err := r.q.QueryRow(context.Background(),
		`SELECT `+packColumns+` FROM packs WHERE id = $1`, id,
	).Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Picture, &p.Active, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pack: %w", err)
	}
	items, err := r.itemsByPack(map[string]bool{id: true})
	if err != nil {
		return nil, err
	}
	p.Items = items[id]
	return &p, nil
}

// List lista todos los packs con sus líneas embebidas (dos consultas, sin
// N+1).
func (r *PackRepo) List() ([]*entity.Pack, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+packColumns+` FROM packs ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list packs: %w", err)
	}
	defer rows.Close()
	var list []*entity.Pack
	ids := make(map[string]bool)
	for rows.Next() {
		var p entity.Pack
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Picture,
			&p.Active, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan pack: %w", err)
		}
		list = append(list, &p)
		ids[p.ID] = true
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return list, nil
	}
	items, err := r.itemsByPack(ids)
	if err != nil {
		return nil, err
	}
	for _, p := range list {
		p.Items = items[p.ID]
	}
	return list, nil
}

func (r *PackRepo) itemsByPack(ids map[string]bool) (map[string][]entity.PackItem, error) {
	idList := make([]string, 0, len(ids))
	for id := range ids {
		idList = append(idList, id)
	}
	rows, err := r.q.Query(context.Background(),
		`SELECT id, pack_id, product_id, quantity, created_at, updated_at
		 FROM pack_items WHERE pack_id = ANY($1)`, idList)
	if err != nil {
		return nil, fmt.Errorf("list pack items: %w", err)
	}
	defer rows.Close()
	out := make(map[string][]entity.PackItem)
	for rows.Next() {
		var it entity.PackItem
		if err := rows.Scan(&it.ID, &it.PackID, &it.ProductID, &it.Quantity, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan pack item: %w", err)
		}
		out[it.PackID] = append(out[it.PackID], it)
	}
	return out, rows.Err()
}

// Update actualiza un pack existente (no toca sus líneas).
func (r *PackRepo) Update(pack *entity.Pack) error {
	query := `
		UPDATE packs SET name = $2, description = $3, price = $4, picture = $5, active = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		pack.ID, pack.Name, pack.Description, pack.Price, pack.Picture, pack.Active, pack.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update pack: %w", err)
	}
	return nil
}

// Delete elimina un pack; pack_items cae en cascada (FK ON DELETE CASCADE).
func (r *PackRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM packs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete pack: %w", err)
	}
	return nil
}

// Exists verifica existencia sin traer la fila completa.
func (r *PackRepo) Exists(id string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM packs WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("pack exists: %w", err)
	}
	return exists, nil
}
