package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateExpenseRequest entrada para registrar un gasto (evento de compra).
type CreateExpenseRequest struct {
	Date            string          `json:"date" validate:"required,fecha"`
	Total           decimal.Decimal `json:"total"`
	Location        string          `json:"location" validate:"max=200"`
	PaymentMethodID string          `json:"payment_method_id" validate:"required,uuid4"`
	Notes           string          `json:"notes" validate:"max=500"`
}

// ExpenseResponse salida de un gasto.
type ExpenseResponse struct {
	ID              string          `json:"id"`
	Date            string          `json:"date"`
	Total           decimal.Decimal `json:"total"`
	Location        string          `json:"location,omitempty"`
	PaymentMethodID string          `json:"payment_method_id"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// CreateExpenseItemRequest entrada para una línea de compra.
// El subtotal lo calcula el servidor (quantity × unit_price).
type CreateExpenseItemRequest struct {
	ExpenseID string          `json:"expense_id" validate:"required,uuid4"`
	ProductID string          `json:"product_id" validate:"required,uuid4"`
	Quantity  int             `json:"quantity" validate:"required,min=1"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// ExpenseItemResponse salida de una línea de compra.
type ExpenseItemResponse struct {
	ID        string          `json:"id"`
	ExpenseID string          `json:"expense_id"`
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	CreatedAt time.Time       `json:"created_at"`
}
