package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense representa un evento de compra/reposición.
type Expense struct {
	ID              string
	Date            time.Time
	Total           decimal.Decimal
	Location        string
	PaymentMethodID string
	Notes           string
	CreatedAt       time.Time
}

// ExpenseItem es una línea de compra. Crearla aumenta el stock del producto
// en Quantity; borrarla revierte ese aumento. Subtotal se calcula en el
// servidor como Quantity × UnitPrice.
type ExpenseItem struct {
	ID        string
	ExpenseID string
	ProductID string
	Quantity  int             // >= 1
	UnitPrice decimal.Decimal // >= 0
	Subtotal  decimal.Decimal
	CreatedAt time.Time
}
