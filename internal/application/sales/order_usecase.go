package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/jsanmartinc/puntoventa-api/internal/application/dto"
	"github.com/jsanmartinc/puntoventa-api/internal/domain"
	"github.com/jsanmartinc/puntoventa-api/internal/domain/entity"
	"github.com/jsanmartinc/puntoventa-api/internal/domain/repository"
	"github.com/jsanmartinc/puntoventa-api/pkg/validator"
)

// OrderUseCase CRUD de ventas (encabezados).
type OrderUseCase struct {
	orderRepo   repository.OrderRepository
	paymentRepo repository.PaymentMethodRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	paymentRepo repository.PaymentMethodRepository,
) *OrderUseCase {
	return &OrderUseCase{orderRepo: orderRepo, paymentRepo: paymentRepo}
}

// Create registra una venta. El medio de pago debe existir.
func (uc *OrderUseCase) Create(in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	date, err := validator.ParseDate(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	exists, err := uc.paymentRepo.Exists(in.PaymentMethodID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}
	order := &entity.Order{
		ID:              uuid.New().String(),
		Date:            date,
		Total:           in.Total,
		PaymentMethodID: in.PaymentMethodID,
		CreatedAt:       time.Now(),
	}
	if err := uc.orderRepo.Create(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// GetByID obtiene una venta; (nil, nil) si no existe.
func (uc *OrderUseCase) GetByID(id string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	return toOrderResponse(order), nil
}

// List lista todas las ventas.
func (uc *OrderUseCase) List() ([]dto.OrderResponse, error) {
	list, err := uc.orderRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return items, nil
}

// Delete elimina una venta por ID.
func (uc *OrderUseCase) Delete(id string) error {
	exists, err := uc.orderRepo.Exists(id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrOrderNotFound
	}
	return uc.orderRepo.Delete(id)
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	return &dto.OrderResponse{
		ID:              o.ID,
		Date:            validator.FormatDate(o.Date),
		Total:           o.Total,
		PaymentMethodID: o.PaymentMethodID,
		CreatedAt:       o.CreatedAt,
	}
}
