package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
// Stock es el saldo disponible y solo se modifica vía el motor de inventario
// (compras, ventas directas y consumo de packs), nunca por edición directa.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta, >= 0
	Stock       decimal.Decimal // saldo disponible, >= 0
	Picture     string          // URI de la imagen (opcional)
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
