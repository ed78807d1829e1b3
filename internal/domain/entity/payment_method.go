package entity

import "time"

// PaymentMethod medio de pago referenciado por gastos y órdenes.
type PaymentMethod struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
