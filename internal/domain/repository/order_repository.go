package repository

import "github.com/jsanmartinc/puntoventa-api/internal/domain/entity"

// OrderRepository puerto de persistencia para Order (DIP).
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	List() ([]*entity.Order, error)
	Delete(id string) error
	Exists(id string) (bool, error)
}

// DetailOrderRepository puerto de persistencia para líneas de venta.
type DetailOrderRepository interface {
	Create(d *entity.DetailOrder) error
	GetByID(id string) (*entity.DetailOrder, error)
	List() ([]*entity.DetailOrder, error)
	ListByOrder(orderID string) ([]*entity.DetailOrder, error)
	Delete(id string) error
}
