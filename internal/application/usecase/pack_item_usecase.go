package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jsanmartinc/puntoventa-api/internal/application/dto"
	"github.com/jsanmartinc/puntoventa-api/internal/domain"
	"github.com/jsanmartinc/puntoventa-api/internal/domain/entity"
	"github.com/jsanmartinc/puntoventa-api/internal/domain/repository"
)

// PackItemUseCase líneas de receta de un pack. La creación hace upsert con
// merge: si ya existe una línea para (pack, producto), las cantidades se
// suman sobre la fila existente en lugar de crear una segunda.
type PackItemUseCase struct {
	repo        repository.PackItemRepository
	packRepo    repository.PackRepository
	productRepo repository.ProductRepository
}

// NewPackItemUseCase construye el caso de uso.
func NewPackItemUseCase(
	repo repository.PackItemRepository,
	packRepo repository.PackRepository,
	productRepo repository.ProductRepository,
) *PackItemUseCase {
	return &PackItemUseCase{repo: repo, packRepo: packRepo, productRepo: productRepo}
}

// Create agrega una línea de receta, con merge de cantidades si el par
// (pack, producto) ya tiene línea. Invariante: a lo sumo una línea por par.
func (uc *PackItemUseCase) Create(in dto.CreatePackItemRequest) (*dto.PackItemResponse, error) {
	packExists, err := uc.packRepo.Exists(in.PackID)
	if err != nil {
		return nil, err
	}
	if !packExists {
		return nil, domain.ErrPackNotFound
	}
	prodExists, err := uc.productRepo.Exists(in.ProductID)
	if err != nil {
		return nil, err
	}
	if !prodExists {
		return nil, domain.ErrProductNotFound
	}

	existing, err := uc.repo.GetByPackAndProduct(in.PackID, in.ProductID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		existing.Quantity += in.Quantity
		existing.UpdatedAt = time.Now()
		if err := uc.repo.Update(existing); err != nil {
			return nil, err
		}
		return toPackItemResponse(existing), nil
	}

	now := time.Now()
	item := &entity.PackItem{
		ID:        uuid.New().String(),
		PackID:    in.PackID,
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toPackItemResponse(item), nil
}

// GetByID obtiene una línea; (nil, nil) si no existe.
func (uc *PackItemUseCase) GetByID(id string) (*dto.PackItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return toPackItemResponse(item), nil
}

// List lista todas las líneas de receta.
func (uc *PackItemUseCase) List() ([]dto.PackItemResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return toPackItemResponses(list), nil
}

// ListByPack lista las líneas de un pack existente.
func (uc *PackItemUseCase) ListByPack(packID string) ([]dto.PackItemResponse, error) {
	exists, err := uc.packRepo.Exists(packID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrPackNotFound
	}
	list, err := uc.repo.ListByPack(packID)
	if err != nil {
		return nil, err
	}
	return toPackItemResponses(list), nil
}

// Replace reemplaza la cantidad de una línea (PUT, sin merge).
func (uc *PackItemUseCase) Replace(id string, in dto.UpdatePackItemRequest) (*dto.PackItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	item.Quantity = in.Quantity
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toPackItemResponse(item), nil
}

// Delete elimina una línea de receta.
func (uc *PackItemUseCase) Delete(id string) error {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toPackItemResponse(it *entity.PackItem) *dto.PackItemResponse {
	return &dto.PackItemResponse{
		ID:        it.ID,
		PackID:    it.PackID,
		ProductID: it.ProductID,
		Quantity:  it.Quantity,
		CreatedAt: it.CreatedAt,
		UpdatedAt: it.UpdatedAt,
	}
}

func toPackItemResponses(list []*entity.PackItem) []dto.PackItemResponse {
	out := make([]dto.PackItemResponse, 0, len(list))
	for _, it := range list {
		out = append(out, *toPackItemResponse(it))
	}
	return out
}
