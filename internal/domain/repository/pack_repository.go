package repository

import "github.com/jsanmartinc/puntoventa-api/internal/domain/entity"

// PackRepository define el puerto de persistencia para Pack (DIP).
// List y GetByID embeben las líneas de receta (Items).
type PackRepository interface {
	Create(pack *entity.Pack) error
	GetByID(id string) (*entity.Pack, error)
	List() ([]*entity.Pack, error)
	Update(pack *entity.Pack) error
	// Delete elimina el pack; sus PackItems caen en cascada en el store.
	Delete(id string) error
	Exists(id string) (bool, error)
}
