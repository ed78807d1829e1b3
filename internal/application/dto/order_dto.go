package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest entrada para registrar una venta.
type CreateOrderRequest struct {
	Date            string          `json:"date" validate:"required,fecha"`
	Total           decimal.Decimal `json:"total"`
	PaymentMethodID string          `json:"payment_method_id" validate:"required,uuid4"`
}

// OrderResponse salida de una venta.
type OrderResponse struct {
	ID              string          `json:"id"`
	Date            string          `json:"date"`
	Total           decimal.Decimal `json:"total"`
	PaymentMethodID string          `json:"payment_method_id"`
	CreatedAt       time.Time       `json:"created_at"`
}

// CreateDetailOrderRequest entrada para una línea de venta. La pareja
// (item_type_id, item_id) se resuelve contra el registro de tipos y se
// verifica la existencia del producto o pack referenciado.
type CreateDetailOrderRequest struct {
	OrderID    string          `json:"order_id" validate:"required,uuid4"`
	ItemTypeID string          `json:"item_type_id" validate:"required,uuid4"`
	ItemID     string          `json:"item_id" validate:"required,uuid4"`
	Quantity   int             `json:"quantity" validate:"required,min=1"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
}

// DetailOrderResponse salida de una línea de venta.
type DetailOrderResponse struct {
	ID         string          `json:"id"`
	OrderID    string          `json:"order_id"`
	ItemKind   string          `json:"item_type"`
	ItemID     string          `json:"item_id"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
	CreatedAt  time.Time       `json:"created_at"`
}
