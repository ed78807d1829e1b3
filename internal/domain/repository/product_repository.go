package repository

import "github.com/jsanmartinc/puntoventa-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID retorna (nil, nil) cuando el producto no existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
	Exists(id string) (bool, error)
}
