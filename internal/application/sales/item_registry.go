package sales

import (
	"github.com/jsanmartinc/puntoventa-api/internal/domain"
	"github.com/jsanmartinc/puntoventa-api/internal/domain/entity"
	"github.com/jsanmartinc/puntoventa-api/internal/domain/repository"
)

// ItemRegistry resuelve referencias polimórficas (item_type_id, item_id) al
// enum cerrado ItemKind y verifica que el item referenciado exista. Solo
// lecturas, sin efectos.
type ItemRegistry struct {
	itemTypeRepo repository.ItemTypeRepository
	productRepo  repository.ProductRepository
	packRepo     repository.PackRepository
}

// NewItemRegistry construye el registro.
func NewItemRegistry(
	itemTypeRepo repository.ItemTypeRepository,
	productRepo repository.ProductRepository,
	packRepo repository.PackRepository,
) *ItemRegistry {
	return &ItemRegistry{
		itemTypeRepo: itemTypeRepo,
		productRepo:  productRepo,
		packRepo:     packRepo,
	}
}

// ResolveKind busca el tipo de item y lo mapea al enum cerrado.
// ErrItemTypeNotFound si la fila no existe; ErrInvalidItemKind si su nombre
// no pertenece al enum (fila corrupta en el registro).
func (r *ItemRegistry) ResolveKind(itemTypeID string) (entity.ItemKind, error) {
	it, err := r.itemTypeRepo.GetByID(itemTypeID)
	if err != nil {
		return "", err
	}
	if it == nil {
		return "", domain.ErrItemTypeNotFound
	}
	kind, ok := entity.ParseItemKind(it.Name)
	if !ok {
		return "", domain.ErrInvalidItemKind
	}
	return kind, nil
}

// ItemExists verifica la existencia del item según su kind, con switch
// explícito sobre el enum cerrado.
func (r *ItemRegistry) ItemExists(kind entity.ItemKind, itemID string) (bool, error) {
	switch kind {
	case entity.KindProduct:
		return r.productRepo.Exists(itemID)
	case entity.KindPack:
		return r.packRepo.Exists(itemID)
	default:
		return false, domain.ErrInvalidItemKind
	}
}

// Resolve convierte la pareja (item_type_id, item_id) en una referencia
// tipada, garantizando que el destino existe.
func (r *ItemRegistry) Resolve(itemTypeID, itemID string) (entity.ItemRef, error) {
	kind, err := r.ResolveKind(itemTypeID)
	if err != nil {
		return entity.ItemRef{}, err
	}
	exists, err := r.ItemExists(kind, itemID)
	if err != nil {
		return entity.ItemRef{}, err
	}
	if !exists {
		return entity.ItemRef{}, domain.ErrNotFound
	}
	return entity.ItemRef{Kind: kind, ID: itemID}, nil
}
