package sales_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsanmartinc/puntoventa-api/internal/application/dto"
	"github.com/jsanmartinc/puntoventa-api/internal/application/sales"
	"github.com/jsanmartinc/puntoventa-api/internal/domain"
	"github.com/jsanmartinc/puntoventa-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeItemTypeRepo struct {
	types map[string]*entity.ItemType
}

func newFakeItemTypeRepo() *fakeItemTypeRepo {
	return &fakeItemTypeRepo{types: make(map[string]*entity.ItemType)}
}

func (f *fakeItemTypeRepo) Create(it *entity.ItemType) error { f.types[it.ID] = it; return nil }
func (f *fakeItemTypeRepo) GetByID(id string) (*entity.ItemType, error) {
	return f.types[id], nil
}
func (f *fakeItemTypeRepo) GetByName(name string) (*entity.ItemType, error) {
	for _, it := range f.types {
		if it.Name == name {
			return it, nil
		}
	}
	return nil, nil
}
func (f *fakeItemTypeRepo) List() ([]*entity.ItemType, error) {
	var out []*entity.ItemType
	for _, it := range f.types {
		out = append(out, it)
	}
	return out, nil
}
func (f *fakeItemTypeRepo) Update(it *entity.ItemType) error { f.types[it.ID] = it; return nil }
func (f *fakeItemTypeRepo) Delete(id string) error           { delete(f.types, id); return nil }

type fakeProductRepo struct {
	ids map[string]bool
}

func (f *fakeProductRepo) Create(p *entity.Product) error { f.ids[p.ID] = true; return nil }
func (f *fakeProductRepo) GetByID(string) (*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) List() ([]*entity.Product, error) { return nil, nil }
func (f *fakeProductRepo) Update(*entity.Product) error     { return nil }
func (f *fakeProductRepo) Delete(id string) error           { delete(f.ids, id); return nil }
func (f *fakeProductRepo) Exists(id string) (bool, error)   { return f.ids[id], nil }

type fakePackRepo struct {
	ids map[string]bool
}

func (f *fakePackRepo) Create(p *entity.Pack) error { f.ids[p.ID] = true; return nil }
func (f *fakePackRepo) GetByID(string) (*entity.Pack, error) {
	return nil, nil
}
func (f *fakePackRepo) List() ([]*entity.Pack, error) { return nil, nil }
func (f *fakePackRepo) Update(*entity.Pack) error     { return nil }
func (f *fakePackRepo) Delete(id string) error        { delete(f.ids, id); return nil }
func (f *fakePackRepo) Exists(id string) (bool, error) { return f.ids[id], nil }

type fakeOrderRepo struct {
	orders map[string]*entity.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*entity.Order)}
}

func (f *fakeOrderRepo) Create(o *entity.Order) error { f.orders[o.ID] = o; return nil }
func (f *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	return f.orders[id], nil
}
func (f *fakeOrderRepo) List() ([]*entity.Order, error) { return nil, nil }
func (f *fakeOrderRepo) Delete(id string) error         { delete(f.orders, id); return nil }
func (f *fakeOrderRepo) Exists(id string) (bool, error) {
	_, ok := f.orders[id]
	return ok, nil
}

type fakeDetailOrderRepo struct {
	details map[string]*entity.DetailOrder
}

func newFakeDetailOrderRepo() *fakeDetailOrderRepo {
	return &fakeDetailOrderRepo{details: make(map[string]*entity.DetailOrder)}
}

func (f *fakeDetailOrderRepo) Create(d *entity.DetailOrder) error {
	f.details[d.ID] = d
	return nil
}
func (f *fakeDetailOrderRepo) GetByID(id string) (*entity.DetailOrder, error) {
	return f.details[id], nil
}
func (f *fakeDetailOrderRepo) List() ([]*entity.DetailOrder, error) {
	var out []*entity.DetailOrder
	for _, d := range f.details {
		out = append(out, d)
	}
	return out, nil
}
func (f *fakeDetailOrderRepo) ListByOrder(orderID string) ([]*entity.DetailOrder, error) {
	var out []*entity.DetailOrder
	for _, d := range f.details {
		if d.OrderID == orderID {
			out = append(out, d)
		}
	}
	return out, nil
}
func (f *fakeDetailOrderRepo) Delete(id string) error { delete(f.details, id); return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Registro de tipos de item
// ──────────────────────────────────────────────────────────────────────────────

func buildRegistry(t *testing.T) (*sales.ItemRegistry, *fakeItemTypeRepo) {
	t.Helper()
	typeRepo := newFakeItemTypeRepo()
	productRepo := &fakeProductRepo{ids: map[string]bool{"prod-1": true}}
	packRepo := &fakePackRepo{ids: map[string]bool{"pack-1": true}}

	require.NoError(t, typeRepo.Create(&entity.ItemType{ID: "tipo-producto", Name: "product"}))
	require.NoError(t, typeRepo.Create(&entity.ItemType{ID: "tipo-pack", Name: "pack"}))
	require.NoError(t, typeRepo.Create(&entity.ItemType{ID: "tipo-corrupto", Name: "bundle"}))

	return sales.NewItemRegistry(typeRepo, productRepo, packRepo), typeRepo
}

func TestResolveKind(t *testing.T) {
	registry, _ := buildRegistry(t)

	kind, err := registry.ResolveKind("tipo-producto")
	require.NoError(t, err)
	assert.Equal(t, entity.KindProduct, kind)

	kind, err = registry.ResolveKind("tipo-pack")
	require.NoError(t, err)
	assert.Equal(t, entity.KindPack, kind)
}

func TestResolveKind_TipoInexistente(t *testing.T) {
	registry, _ := buildRegistry(t)

	_, err := registry.ResolveKind("no-existe")
	assert.ErrorIs(t, err, domain.ErrItemTypeNotFound)
}

func TestResolveKind_NombreFueraDelEnum(t *testing.T) {
	registry, _ := buildRegistry(t)

	_, err := registry.ResolveKind("tipo-corrupto")
	assert.ErrorIs(t, err, domain.ErrInvalidItemKind)
}

func TestItemExists_SwitchPorKind(t *testing.T) {
	registry, _ := buildRegistry(t)

	ok, err := registry.ItemExists(entity.KindProduct, "prod-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = registry.ItemExists(entity.KindPack, "prod-1")
	require.NoError(t, err)
	assert.False(t, ok, "un producto no existe como pack")
}

func TestResolve_ItemInexistente(t *testing.T) {
	registry, _ := buildRegistry(t)

	_, err := registry.Resolve("tipo-producto", "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Líneas de venta
// ──────────────────────────────────────────────────────────────────────────────

func buildDetailOrderFixture(t *testing.T) *sales.DetailOrderUseCase {
	t.Helper()
	registry, _ := buildRegistry(t)
	orderRepo := newFakeOrderRepo()
	detailRepo := newFakeDetailOrderRepo()

	require.NoError(t, orderRepo.Create(&entity.Order{ID: "orden-1"}))

	return sales.NewDetailOrderUseCase(detailRepo, orderRepo, registry)
}

func TestDetailOrderCreate_TotalCalculadoEnServidor(t *testing.T) {
	uc := buildDetailOrderFixture(t)

	out, err := uc.Create(dto.CreateDetailOrderRequest{
		OrderID:    "orden-1",
		ItemTypeID: "tipo-producto",
		ItemID:     "prod-1",
		Quantity:   3,
		UnitPrice:  decimal.NewFromInt(7),
	})

	require.NoError(t, err)
	assert.Equal(t, "product", out.ItemKind)
	assert.True(t, out.TotalPrice.Equal(decimal.NewFromInt(21)), "total = cantidad × precio unitario")
}

func TestDetailOrderCreate_OrdenInexistente(t *testing.T) {
	uc := buildDetailOrderFixture(t)

	_, err := uc.Create(dto.CreateDetailOrderRequest{
		OrderID:    "no-existe",
		ItemTypeID: "tipo-producto",
		ItemID:     "prod-1",
		Quantity:   1,
		UnitPrice:  decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestDetailOrderCreate_ReferenciaAPack(t *testing.T) {
	uc := buildDetailOrderFixture(t)

	out, err := uc.Create(dto.CreateDetailOrderRequest{
		OrderID:    "orden-1",
		ItemTypeID: "tipo-pack",
		ItemID:     "pack-1",
		Quantity:   2,
		UnitPrice:  decimal.NewFromInt(15),
	})

	require.NoError(t, err)
	assert.Equal(t, "pack", out.ItemKind)
	assert.Equal(t, "pack-1", out.ItemID)
}
