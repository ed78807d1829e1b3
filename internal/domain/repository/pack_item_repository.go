package repository

import "github.com/jsanmartinc/puntoventa-api/internal/domain/entity"

// PackItemRepository puerto de persistencia para las líneas de receta.
// GetByPackAndProduct soporta el merge de cantidades en la creación
// (a lo sumo una línea por par pack+producto).
type PackItemRepository interface {
	Create(item *entity.PackItem) error
	GetByID(id string) (*entity.PackItem, error)
	GetByPackAndProduct(packID, productID string) (*entity.PackItem, error)
	List() ([]*entity.PackItem, error)
	ListByPack(packID string) ([]*entity.PackItem, error)
	Update(item *entity.PackItem) error
	Delete(id string) error
}
