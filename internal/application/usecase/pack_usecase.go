package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jsanmartinc/puntoventa-api/internal/application/dto"
	"github.com/jsanmartinc/puntoventa-api/internal/domain"
	"github.com/jsanmartinc/puntoventa-api/internal/domain/entity"
	"github.com/jsanmartinc/puntoventa-api/internal/domain/repository"
)

// PackUseCase casos de uso CRUD para packs. Los listados embeben las líneas
// de receta.
type PackUseCase struct {
	repo repository.PackRepository
}

// NewPackUseCase construye el caso de uso.
func NewPackUseCase(repo repository.PackRepository) *PackUseCase {
	return &PackUseCase{repo: repo}
}

// Create crea un pack (inicialmente sin líneas).
func (uc *PackUseCase) Create(in dto.CreatePackRequest) (*dto.PackResponse, error) {
	if in.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	now := time.Now()
	pack := &entity.Pack{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Picture:     in.Picture,
		Active:      active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(pack); err != nil {
		return nil, err
	}
	return toPackResponse(pack), nil
}

// GetByID obtiene un pack con sus líneas; (nil, nil) si no existe.
func (uc *PackUseCase) GetByID(id string) (*dto.PackResponse, error) {
	pack, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pack == nil {
		return nil, nil
	}
	return toPackResponse(pack), nil
}

// List lista todos los packs con sus líneas embebidas.
func (uc *PackUseCase) List() ([]dto.PackResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.PackResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPackResponse(p))
	}
	return items, nil
}

// Update merge parcial y refresco de updated_at.
func (uc *PackUseCase) Update(id string, in dto.UpdatePackRequest) (*dto.PackResponse, error) {
	pack, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pack == nil {
		return nil, nil
	}
	if in.Name != nil {
		pack.Name = *in.Name
	}
	if in.Description != nil {
		pack.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		pack.Price = *in.Price
	}
	if in.Picture != nil {
		pack.Picture = *in.Picture
	}
	if in.Active != nil {
		pack.Active = *in.Active
	}
	pack.UpdatedAt = time.Now()
	if err := uc.repo.Update(pack); err != nil {
		return nil, err
	}
	return toPackResponse(pack), nil
}

// Delete elimina un pack; sus líneas caen en cascada.
func (uc *PackUseCase) Delete(id string) error {
	exists, err := uc.repo.Exists(id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrPackNotFound
	}
	return uc.repo.Delete(id)
}

func toPackResponse(p *entity.Pack) *dto.PackResponse {
	items := make([]dto.PackItemResponse, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, *toPackItemResponse(&it))
	}
	return &dto.PackResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Picture:     p.Picture,
		Active:      p.Active,
		Items:       items,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
