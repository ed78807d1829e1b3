package repository

import "github.com/shopspring/decimal"

// StockRepository es el punto autoritativo de mutación del stock de un
// producto (columna stock de products). Usado dentro de transacciones para
// garantizar consistencia en operaciones multi-línea.
type StockRepository interface {
	// Get retorna el stock actual; found=false si el producto no existe.
	Get(productID string) (qty decimal.Decimal, found bool, err error)
	// Adjust aplica stock := stock + delta como update relativo en una sola
	// sentencia (delta puede ser negativo). ErrProductNotFound si no hay fila.
	Adjust(productID string, delta decimal.Decimal) error
	// ConsumeIfAvailable descuenta qty solo si stock >= qty, como update
	// condicional atómico (se inspecciona RowsAffected). Retorna
	// ErrInsufficientStock si no alcanza y ErrProductNotFound si no existe.
	ConsumeIfAvailable(productID string, qty decimal.Decimal) error
}
