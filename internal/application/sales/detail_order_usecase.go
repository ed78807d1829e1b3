package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jsanmartinc/puntoventa-api/internal/application/dto"
	"github.com/jsanmartinc/puntoventa-api/internal/domain"
	"github.com/jsanmartinc/puntoventa-api/internal/domain/entity"
	"github.com/jsanmartinc/puntoventa-api/internal/domain/repository"
)

// DetailOrderUseCase líneas de venta con referencia tipada a producto o
// pack. Registrar una línea NO descuenta stock: el consumo se aplica por
// separado con las operaciones de inventario.
type DetailOrderUseCase struct {
	detailRepo repository.DetailOrderRepository
	orderRepo  repository.OrderRepository
	registry   *ItemRegistry
}

// NewDetailOrderUseCase construye el caso de uso.
func NewDetailOrderUseCase(
	detailRepo repository.DetailOrderRepository,
	orderRepo repository.OrderRepository,
	registry *ItemRegistry,
) *DetailOrderUseCase {
	return &DetailOrderUseCase{
		detailRepo: detailRepo,
		orderRepo:  orderRepo,
		registry:   registry,
	}
}

// Create registra una línea de venta. La orden debe existir y la referencia
// (item_type_id, item_id) se resuelve a un ItemRef tipado contra el registro.
// TotalPrice se calcula en el servidor.
func (uc *DetailOrderUseCase) Create(in dto.CreateDetailOrderRequest) (*dto.DetailOrderResponse, error) {
	if in.Quantity < 1 || in.UnitPrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	exists, err := uc.orderRepo.Exists(in.OrderID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrOrderNotFound
	}
	ref, err := uc.registry.Resolve(in.ItemTypeID, in.ItemID)
	if err != nil {
		return nil, err
	}
	qty := decimal.NewFromInt(int64(in.Quantity))
	detail := &entity.DetailOrder{
		ID:         uuid.New().String(),
		OrderID:    in.OrderID,
		Item:       ref,
		Quantity:   in.Quantity,
		UnitPrice:  in.UnitPrice,
		TotalPrice: qty.Mul(in.UnitPrice),
		CreatedAt:  time.Now(),
	}
	if err := uc.detailRepo.Create(detail); err != nil {
		return nil, err
	}
	return toDetailOrderResponse(detail), nil
}

// GetByID obtiene una línea; (nil, nil) si no existe.
func (uc *DetailOrderUseCase) GetByID(id string) (*dto.DetailOrderResponse, error) {
	d, err := uc.detailRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, nil
	}
	return toDetailOrderResponse(d), nil
}

// List lista todas las líneas de venta.
func (uc *DetailOrderUseCase) List() ([]dto.DetailOrderResponse, error) {
	list, err := uc.detailRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.DetailOrderResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toDetailOrderResponse(d))
	}
	return items, nil
}

// Delete elimina una línea de venta por ID.
func (uc *DetailOrderUseCase) Delete(id string) error {
	d, err := uc.detailRepo.GetByID(id)
	if err != nil {
		return err
	}
	if d == nil {
		return domain.ErrNotFound
	}
	return uc.detailRepo.Delete(id)
}

func toDetailOrderResponse(d *entity.DetailOrder) *dto.DetailOrderResponse {
	return &dto.DetailOrderResponse{
		ID:         d.ID,
		OrderID:    d.OrderID,
		ItemKind:   string(d.Item.Kind),
		ItemID:     d.Item.ID,
		Quantity:   d.Quantity,
		UnitPrice:  d.UnitPrice,
		TotalPrice: d.TotalPrice,
		CreatedAt:  d.CreatedAt,
	}
}
