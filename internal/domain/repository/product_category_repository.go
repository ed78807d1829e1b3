package repository

import "github.com/jsanmartinc/puntoventa-api/internal/domain/entity"

// ProductCategoryRepository puerto para la relación Product↔Category
// (clave compuesta, sin id propio).
type ProductCategoryRepository interface {
	Get(productID, categoryID string) (*entity.ProductCategory, error)
	ListByProduct(productID string) ([]*entity.ProductCategory, error)
	ListByCategory(categoryID string) ([]*entity.ProductCategory, error)
	Create(rel *entity.ProductCategory) error
	CreateBatch(rels []*entity.ProductCategory) error
	// ReplaceForProduct reemplaza el conjunto completo de categorías de un
	// producto (borra las actuales e inserta las nuevas).
	ReplaceForProduct(productID string, categoryIDs []string) error
	Delete(productID, categoryID string) error
}
