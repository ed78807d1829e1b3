package usecase

import (
	"time"

	"github.com/jsanmartinc/puntoventa-api/internal/application/dto"
	"github.com/jsanmartinc/puntoventa-api/internal/domain"
	"github.com/jsanmartinc/puntoventa-api/internal/domain/entity"
	"github.com/jsanmartinc/puntoventa-api/internal/domain/repository"
)

// ProductCategoryUseCase gestiona la relación muchos-a-muchos entre
// productos y categorías.
type ProductCategoryUseCase struct {
	relRepo      repository.ProductCategoryRepository
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductCategoryUseCase construye el caso de uso.
func NewProductCategoryUseCase(
	relRepo repository.ProductCategoryRepository,
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
) *ProductCategoryUseCase {
	return &ProductCategoryUseCase{
		relRepo:      relRepo,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// Create asocia un producto con una categoría. Ambos deben existir y la
// relación no puede estar duplicada.
func (uc *ProductCategoryUseCase) Create(in dto.CreateProductCategoryRequest) (*dto.ProductCategoryResponse, error) {
	if err := uc.checkEndpoints(in.ProductID, in.CategoryID); err != nil {
		return nil, err
	}
	existing, err := uc.relRepo.Get(in.ProductID, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrRelationExists
	}
	rel := &entity.ProductCategory{
		ProductID:  in.ProductID,
		CategoryID: in.CategoryID,
		CreatedAt:  time.Now(),
	}
	if err := uc.relRepo.Create(rel); err != nil {
		return nil, err
	}
	return toProductCategoryResponse(rel), nil
}

// CreateBatch asocia un producto con varias categorías en un solo llamado.
// Relaciones ya existentes se omiten en vez de fallar el lote completo.
func (uc *ProductCategoryUseCase) CreateBatch(in dto.BatchProductCategoryRequest) ([]dto.ProductCategoryResponse, error) {
	exists, err := uc.productRepo.Exists(in.ProductID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrProductNotFound
	}
	now := time.Now()
	var rels []*entity.ProductCategory
	for _, catID := range in.CategoryIDs {
		catExists, err := uc.categoryRepo.Exists(catID)
		if err != nil {
			return nil, err
		}
		if !catExists {
			return nil, domain.ErrNotFound
		}
		existing, err := uc.relRepo.Get(in.ProductID, catID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			continue
		}
		rels = append(rels, &entity.ProductCategory{
			ProductID:  in.ProductID,
			CategoryID: catID,
			CreatedAt:  now,
		})
	}
	if len(rels) > 0 {
		if err := uc.relRepo.CreateBatch(rels); err != nil {
			return nil, err
		}
	}
	out := make([]dto.ProductCategoryResponse, 0, len(rels))
	for _, rel := range rels {
		out = append(out, *toProductCategoryResponse(rel))
	}
	return out, nil
}

// ReplaceForProduct reemplaza el conjunto completo de categorías de un
// producto (PATCH por lote).
func (uc *ProductCategoryUseCase) ReplaceForProduct(in dto.BatchProductCategoryRequest) error {
	exists, err := uc.productRepo.Exists(in.ProductID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrProductNotFound
	}
	for _, catID := range in.CategoryIDs {
		catExists, err := uc.categoryRepo.Exists(catID)
		if err != nil {
			return err
		}
		if !catExists {
			return domain.ErrNotFound
		}
	}
	return uc.relRepo.ReplaceForProduct(in.ProductID, in.CategoryIDs)
}

// Update mueve una relación (oldP, oldC) → (newP, newC). Falla si la
// relación vieja no existe o si la nueva ya existe; las verificaciones van
// antes de cualquier mutación, nunca hay borrado parcial.
func (uc *ProductCategoryUseCase) Update(in dto.UpdateProductCategoryRequest) (*dto.ProductCategoryResponse, error) {
	old, err := uc.relRepo.Get(in.OldProductID, in.OldCategoryID)
	if err != nil {
		return nil, err
	}
	if old == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.checkEndpoints(in.NewProductID, in.NewCategoryID); err != nil {
		return nil, err
	}
	existing, err := uc.relRepo.Get(in.NewProductID, in.NewCategoryID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrRelationExists
	}
	rel := &entity.ProductCategory{
		ProductID:  in.NewProductID,
		CategoryID: in.NewCategoryID,
		CreatedAt:  time.Now(),
	}
	if err := uc.relRepo.Create(rel); err != nil {
		return nil, err
	}
	if err := uc.relRepo.Delete(in.OldProductID, in.OldCategoryID); err != nil {
		return nil, err
	}
	return toProductCategoryResponse(rel), nil
}

// ListByProduct lista las relaciones de un producto existente.
func (uc *ProductCategoryUseCase) ListByProduct(productID string) ([]dto.ProductCategoryResponse, error) {
	exists, err := uc.productRepo.Exists(productID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrProductNotFound
	}
	list, err := uc.relRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	return toProductCategoryResponses(list), nil
}

// ListByCategory lista las relaciones de una categoría existente.
func (uc *ProductCategoryUseCase) ListByCategory(categoryID string) ([]dto.ProductCategoryResponse, error) {
	exists, err := uc.categoryRepo.Exists(categoryID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}
	list, err := uc.relRepo.ListByCategory(categoryID)
	if err != nil {
		return nil, err
	}
	return toProductCategoryResponses(list), nil
}

// Delete elimina la relación (productID, categoryID).
func (uc *ProductCategoryUseCase) Delete(productID, categoryID string) error {
	existing, err := uc.relRepo.Get(productID, categoryID)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	return uc.relRepo.Delete(productID, categoryID)
}

func (uc *ProductCategoryUseCase) checkEndpoints(productID, categoryID string) error {
	prodExists, err := uc.productRepo.Exists(productID)
	if err != nil {
		return err
	}
	if !prodExists {
		return domain.ErrProductNotFound
	}
	catExists, err := uc.categoryRepo.Exists(categoryID)
	if err != nil {
		return err
	}
	if !catExists {
		return domain.ErrNotFound
	}
	return nil
}

func toProductCategoryResponse(rel *entity.ProductCategory) *dto.ProductCategoryResponse {
	return &dto.ProductCategoryResponse{
		ProductID:  rel.ProductID,
		CategoryID: rel.CategoryID,
		CreatedAt:  rel.CreatedAt,
	}
}

func toProductCategoryResponses(list []*entity.ProductCategory) []dto.ProductCategoryResponse {
	out := make([]dto.ProductCategoryResponse, 0, len(list))
	for _, rel := range list {
		out = append(out, *toProductCategoryResponse(rel))
	}
	return out
}
