package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order es el encabezado de una venta.
type Order struct {
	ID              string
	Date            time.Time
	Total           decimal.Decimal
	PaymentMethodID string
	CreatedAt       time.Time
}

// DetailOrder es una línea de venta que referencia un producto o un pack
// mediante ItemRef (enum cerrado + id). Registrar la línea no descuenta
// stock; el consumo va por las operaciones de inventario.
type DetailOrder struct {
	ID         string
	OrderID    string
	Item       ItemRef
	Quantity   int
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
	CreatedAt  time.Time
}
