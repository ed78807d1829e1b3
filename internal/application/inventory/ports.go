package inventory

import (
	"context"

	"github.com/jsanmartinc/puntoventa-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza el efecto todo-o-nada de las
// operaciones que tocan varias filas (consumo de packs, líneas de compra).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockRepository,
		packItemRepo repository.PackItemRepository,
		expenseItemRepo repository.ExpenseItemRepository,
	) error) error
}
