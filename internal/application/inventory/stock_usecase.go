package inventory

import (
	"github.com/shopspring/decimal"
	"github.com/jsanmartinc/puntoventa-api/internal/domain"
	"github.com/jsanmartinc/puntoventa-api/internal/domain/repository"
)

// StockUseCase libro de stock de un producto individual: consulta,
// verificación de suficiencia y venta directa.
type StockUseCase struct {
	stockRepo repository.StockRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(stockRepo repository.StockRepository) *StockUseCase {
	return &StockUseCase{stockRepo: stockRepo}
}

// Get retorna el stock actual del producto; ErrProductNotFound si no existe.
func (uc *StockUseCase) Get(productID string) (decimal.Decimal, error) {
	qty, found, err := uc.stockRepo.Get(productID)
	if err != nil {
		return decimal.Zero, err
	}
	if !found {
		return decimal.Zero, domain.ErrProductNotFound
	}
	return qty, nil
}

// HasSufficientStock reporta si el producto tiene al menos qty unidades.
// Falla cerrado: producto inexistente cuenta como stock insuficiente.
func (uc *StockUseCase) HasSufficientStock(productID string, qty decimal.Decimal) (bool, error) {
	current, found, err := uc.stockRepo.Get(productID)
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}
	return current.GreaterThanOrEqual(qty), nil
}

// SellProduct descuenta qty unidades del stock. La verificación de
// suficiencia y el decremento son una sola sentencia condicional atómica,
// así dos ventas concurrentes no pueden sobrevender.
func (uc *StockUseCase) SellProduct(productID string, qty decimal.Decimal) error {
	if !qty.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	return uc.stockRepo.ConsumeIfAvailable(productID, qty)
}
