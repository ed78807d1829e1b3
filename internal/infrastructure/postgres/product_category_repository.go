package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jsanmartinc/puntoventa-api/internal/domain/entity"
	"github.com/jsanmartinc/puntoventa-api/internal/domain/repository"
)

var _ repository.ProductCategoryRepository = (*ProductCategoryRepo)(nil)

// ProductCategoryRepo relación Product↔Category sobre PostgreSQL (clave
// compuesta product_id + category_id).
type ProductCategoryRepo struct {
	q Querier
}

// NewProductCategoryRepository construye el adaptador. Pasar pool o tx.
func NewProductCategoryRepository(q Querier) *ProductCategoryRepo {
	return &ProductCategoryRepo{q: q}
}

// Get obtiene la relación exacta; (nil, nil) si no existe.
func (r *ProductCategoryRepo) Get(productID, categoryID string) (*entity.ProductCategory, error) {
	var rel entity.ProductCategory
	err := r.q.QueryRow(context.Background(),
		`SELECT product_id, category_id, created_at FROM products_categories
		 WHERE product_id = $1 AND category_id = $2`, productID, categoryID,
	).Scan(&rel.ProductID, &rel.CategoryID, &rel.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product-category: %w", err)
	}
	return &rel, nil
}

// ListByProduct lista las relaciones de un producto.
func (r *ProductCategoryRepo) ListByProduct(productID string) ([]*entity.ProductCategory, error) {
	return r.list(`SELECT product_id, category_id, created_at FROM products_categories WHERE product_id = $1`, productID)
}

// ListByCategory lista las relaciones de una categoría.
func (r *ProductCategoryRepo) ListByCategory(categoryID string) ([]*entity.ProductCategory, error) {
	return r.list(`SELECT product_id, category_id, created_at FROM products_categories WHERE category_id = $1`, categoryID)
}

func (r *ProductCategoryRepo) list(query string, arg any) ([]*entity.ProductCategory, error) {
	rows, err := r.q.Query(context.Background(), query, arg)
	if err != nil {
		return nil, fmt.Errorf("list product-categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductCategory
	for rows.Next() {
		var rel entity.ProductCategory
		if err := rows.Scan(&rel.ProductID, &rel.CategoryID, &rel.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product-category: %w", err)
		}
		list = append(list, &rel)
	}
	return list, rows.Err()
}

// Create persiste una relación.
func (r *ProductCategoryRepo) Create(rel *entity.ProductCategory) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO products_categories (product_id, category_id, created_at) VALUES ($1, $2, $3)`,
		rel.ProductID, rel.CategoryID, rel.CreatedAt,
	)
	if err != nil {
		return mapConstraintError(fmt.Errorf("insert product-category: %w", err))
	}
	return nil
}

// CreateBatch inserta varias relaciones.
func (r *ProductCategoryRepo) CreateBatch(rels []*entity.ProductCategory) error {
	for _, rel := range rels {
		if err := r.Create(rel); err != nil {
			return err
		}
	}
	return nil
}

// ReplaceForProduct reemplaza el conjunto de categorías de un producto.
func (r *ProductCategoryRepo) ReplaceForProduct(productID string, categoryIDs []string) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx,
		`DELETE FROM products_categories WHERE product_id = $1`, productID); err != nil {
		return fmt.Errorf("clear product-categories: %w", err)
	}
	for _, catID := range categoryIDs {
		if _, err := r.q.Exec(ctx,
			`INSERT INTO products_categories (product_id, category_id, created_at) VALUES ($1, $2, now())`,
			productID, catID); err != nil {
			return mapConstraintError(fmt.Errorf("insert product-category: %w", err))
		}
	}
	return nil
}

// Delete elimina la relación exacta.
func (r *ProductCategoryRepo) Delete(productID, categoryID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM products_categories WHERE product_id = $1 AND category_id = $2`,
		productID, categoryID,
	)
	if err != nil {
		return fmt.Errorf("delete product-category: %w", err)
	}
	return nil
}
