package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Pack representa un combo: una receta fija de productos que se vende como
// una sola línea de orden. Es dueño exclusivo de sus PackItems.
type Pack struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Picture     string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Items []PackItem // embebidos en listados
}

// PackItem es una línea de la receta: cuántas unidades de un producto
// requiere una unidad del pack. A lo sumo una línea por (pack, producto);
// la creación hace merge de cantidades si la línea ya existe.
type PackItem struct {
	ID        string
	PackID    string
	ProductID string
	Quantity  int // >= 1
	CreatedAt time.Time
	UpdatedAt time.Time
}
