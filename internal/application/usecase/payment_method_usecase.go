package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jsanmartinc/puntoventa-api/internal/application/dto"
	"github.com/jsanmartinc/puntoventa-api/internal/domain"
	"github.com/jsanmartinc/puntoventa-api/internal/domain/entity"
	"github.com/jsanmartinc/puntoventa-api/internal/domain/repository"
)

// PaymentMethodUseCase casos de uso CRUD para medios de pago.
type PaymentMethodUseCase struct {
	repo repository.PaymentMethodRepository
}

// NewPaymentMethodUseCase construye el caso de uso.
func NewPaymentMethodUseCase(repo repository.PaymentMethodRepository) *PaymentMethodUseCase {
	return &PaymentMethodUseCase{repo: repo}
}

// Create crea un medio de pago.
func (uc *PaymentMethodUseCase) Create(in dto.CreatePaymentMethodRequest) (*dto.PaymentMethodResponse, error) {
	now := time.Now()
	pm := &entity.PaymentMethod{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(pm); err != nil {
		return nil, err
	}
	return toPaymentMethodResponse(pm), nil
}

// GetByID obtiene un medio de pago; (nil, nil) si no existe.
func (uc *PaymentMethodUseCase) GetByID(id string) (*dto.PaymentMethodResponse, error) {
	pm, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pm == nil {
		return nil, nil
	}
	return toPaymentMethodResponse(pm), nil
}

// List lista todos los medios de pago.
func (uc *PaymentMethodUseCase) List() ([]dto.PaymentMethodResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.PaymentMethodResponse, 0, len(list))
	for _, pm := range list {
		items = append(items, *toPaymentMethodResponse(pm))
	}
	return items, nil
}

// Update merge parcial del medio de pago.
func (uc *PaymentMethodUseCase) Update(id string, in dto.UpdatePaymentMethodRequest) (*dto.PaymentMethodResponse, error) {
	pm, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pm == nil {
		return nil, nil
	}
	if in.Name != nil {
		pm.Name = *in.Name
	}
	pm.UpdatedAt = time.Now()
	if err := uc.repo.Update(pm); err != nil {
		return nil, err
	}
	return toPaymentMethodResponse(pm), nil
}

// Delete elimina un medio de pago por ID.
func (uc *PaymentMethodUseCase) Delete(id string) error {
	exists, err := uc.repo.Exists(id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toPaymentMethodResponse(pm *entity.PaymentMethod) *dto.PaymentMethodResponse {
	return &dto.PaymentMethodResponse{
		ID:        pm.ID,
		Name:      pm.Name,
		CreatedAt: pm.CreatedAt,
		UpdatedAt: pm.UpdatedAt,
	}
}
