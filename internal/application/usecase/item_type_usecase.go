package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jsanmartinc/puntoventa-api/internal/application/dto"
	"github.com/jsanmartinc/puntoventa-api/internal/domain"
	"github.com/jsanmartinc/puntoventa-api/internal/domain/entity"
	"github.com/jsanmartinc/puntoventa-api/internal/domain/repository"
)

// ItemTypeUseCase CRUD del registro de tipos de item. Los nombres están
// restringidos al enum cerrado (product | pack); a lo sumo una fila por kind.
type ItemTypeUseCase struct {
	repo repository.ItemTypeRepository
}

// NewItemTypeUseCase construye el caso de uso.
func NewItemTypeUseCase(repo repository.ItemTypeRepository) *ItemTypeUseCase {
	return &ItemTypeUseCase{repo: repo}
}

// Create registra un tipo de item. El nombre debe pertenecer al enum y no
// estar ya registrado.
func (uc *ItemTypeUseCase) Create(in dto.CreateItemTypeRequest) (*dto.ItemTypeResponse, error) {
	if _, ok := entity.ParseItemKind(in.Name); !ok {
		return nil, domain.ErrInvalidItemKind
	}
	existing, err := uc.repo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	it := &entity.ItemType{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(it); err != nil {
		return nil, err
	}
	return toItemTypeResponse(it), nil
}

// GetByID obtiene un tipo de item; (nil, nil) si no existe.
func (uc *ItemTypeUseCase) GetByID(id string) (*dto.ItemTypeResponse, error) {
	it, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, nil
	}
	return toItemTypeResponse(it), nil
}

// List lista el registro completo.
func (uc *ItemTypeUseCase) List() ([]dto.ItemTypeResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemTypeResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toItemTypeResponse(it))
	}
	return items, nil
}

// Replace reemplaza el nombre de un tipo de item (PUT).
func (uc *ItemTypeUseCase) Replace(id string, in dto.UpdateItemTypeRequest) (*dto.ItemTypeResponse, error) {
	if _, ok := entity.ParseItemKind(in.Name); !ok {
		return nil, domain.ErrInvalidItemKind
	}
	it, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, nil
	}
	other, err := uc.repo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if other != nil && other.ID != id {
		return nil, domain.ErrDuplicate
	}
	it.Name = in.Name
	it.UpdatedAt = time.Now()
	if err := uc.repo.Update(it); err != nil {
		return nil, err
	}
	return toItemTypeResponse(it), nil
}

// Delete elimina un tipo de item por ID.
func (uc *ItemTypeUseCase) Delete(id string) error {
	it, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if it == nil {
		return domain.ErrItemTypeNotFound
	}
	return uc.repo.Delete(id)
}

func toItemTypeResponse(it *entity.ItemType) *dto.ItemTypeResponse {
	return &dto.ItemTypeResponse{
		ID:        it.ID,
		Name:      it.Name,
		CreatedAt: it.CreatedAt,
		UpdatedAt: it.UpdatedAt,
	}
}
