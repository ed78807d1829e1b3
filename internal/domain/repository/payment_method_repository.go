package repository

import "github.com/jsanmartinc/puntoventa-api/internal/domain/entity"

// PaymentMethodRepository puerto de persistencia para PaymentMethod (DIP).
type PaymentMethodRepository interface {
	Create(pm *entity.PaymentMethod) error
	GetByID(id string) (*entity.PaymentMethod, error)
	List() ([]*entity.PaymentMethod, error)
	Update(pm *entity.PaymentMethod) error
	Delete(id string) error
	Exists(id string) (bool, error)
}
