package repository

import "github.com/jsanmartinc/puntoventa-api/internal/domain/entity"

// ItemTypeRepository puerto del registro de tipos de item (product | pack).
type ItemTypeRepository interface {
	Create(it *entity.ItemType) error
	GetByID(id string) (*entity.ItemType, error)
	GetByName(name string) (*entity.ItemType, error)
	List() ([]*entity.ItemType, error)
	Update(it *entity.ItemType) error
	Delete(id string) error
}
