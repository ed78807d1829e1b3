package usecase_test

import (
	"github.com/jsanmartinc/puntoventa-api/internal/domain/entity"
)

// Fakes en memoria compartidos por los tests del paquete. Replican el
// contrato de los repos reales: (nil, nil) para ausentes.

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (f *fakeProductRepo) Create(p *entity.Product) error { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) List() ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}
func (f *fakeProductRepo) Update(p *entity.Product) error { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) Delete(id string) error         { delete(f.products, id); return nil }
func (f *fakeProductRepo) Exists(id string) (bool, error) {
	_, ok := f.products[id]
	return ok, nil
}

type fakeCategoryRepo struct {
	categories map[string]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[string]*entity.Category)}
}

func (f *fakeCategoryRepo) Create(c *entity.Category) error { f.categories[c.ID] = c; return nil }
func (f *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	return f.categories[id], nil
}
func (f *fakeCategoryRepo) List() ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range f.categories {
		out = append(out, c)
	}
	return out, nil
}
func (f *fakeCategoryRepo) Update(c *entity.Category) error { f.categories[c.ID] = c; return nil }
func (f *fakeCategoryRepo) Delete(id string) error          { delete(f.categories, id); return nil }
func (f *fakeCategoryRepo) Exists(id string) (bool, error) {
	_, ok := f.categories[id]
	return ok, nil
}

type relKey struct{ productID, categoryID string }

type fakeRelRepo struct {
	rels map[relKey]*entity.ProductCategory
}

func newFakeRelRepo() *fakeRelRepo {
	return &fakeRelRepo{rels: make(map[relKey]*entity.ProductCategory)}
}

func (f *fakeRelRepo) Get(productID, categoryID string) (*entity.ProductCategory, error) {
	return f.rels[relKey{productID, categoryID}], nil
}
func (f *fakeRelRepo) ListByProduct(productID string) ([]*entity.ProductCategory, error) {
	var out []*entity.ProductCategory
	for k, rel := range f.rels {
		if k.productID == productID {
			out = append(out, rel)
		}
	}
	return out, nil
}
func (f *fakeRelRepo) ListByCategory(categoryID string) ([]*entity.ProductCategory, error) {
	var out []*entity.ProductCategory
	for k, rel := range f.rels {
		if k.categoryID == categoryID {
			out = append(out, rel)
		}
	}
	return out, nil
}
func (f *fakeRelRepo) Create(rel *entity.ProductCategory) error {
	f.rels[relKey{rel.ProductID, rel.CategoryID}] = rel
	return nil
}
func (f *fakeRelRepo) CreateBatch(rels []*entity.ProductCategory) error {
	for _, rel := range rels {
		f.rels[relKey{rel.ProductID, rel.CategoryID}] = rel
	}
	return nil
}
func (f *fakeRelRepo) ReplaceForProduct(productID string, categoryIDs []string) error {
	for k := range f.rels {
		if k.productID == productID {
			delete(f.rels, k)
		}
	}
	for _, catID := range categoryIDs {
		f.rels[relKey{productID, catID}] = &entity.ProductCategory{
			ProductID: productID, CategoryID: catID,
		}
	}
	return nil
}
func (f *fakeRelRepo) Delete(productID, categoryID string) error {
	delete(f.rels, relKey{productID, categoryID})
	return nil
}

type fakePackRepo struct {
	packs map[string]*entity.Pack
}

func newFakePackRepo() *fakePackRepo {
	return &fakePackRepo{packs: make(map[string]*entity.Pack)}
}

func (f *fakePackRepo) Create(p *entity.Pack) error { f.packs[p.ID] = p; return nil }
func (f *fakePackRepo) GetByID(id string) (*entity.Pack, error) {
	return f.packs[id], nil
}
func (f *fakePackRepo) List() ([]*entity.Pack, error) {
	var out []*entity.Pack
	for _, p := range f.packs {
		out = append(out, p)
	}
	return out, nil
}
func (f *fakePackRepo) Update(p *entity.Pack) error { f.packs[p.ID] = p; return nil }
func (f *fakePackRepo) Delete(id string) error      { delete(f.packs, id); return nil }
func (f *fakePackRepo) Exists(id string) (bool, error) {
	_, ok := f.packs[id]
	return ok, nil
}

type fakePackItemRepo struct {
	items []*entity.PackItem
}

func (f *fakePackItemRepo) Create(it *entity.PackItem) error {
	f.items = append(f.items, it)
	return nil
}
func (f *fakePackItemRepo) GetByID(id string) (*entity.PackItem, error) {
	for _, it := range f.items {
		if it.ID == id {
			return it, nil
		}
	}
	return nil, nil
}
func (f *fakePackItemRepo) GetByPackAndProduct(packID, productID string) (*entity.PackItem, error) {
	for _, it := range f.items {
		if it.PackID == packID && it.ProductID == productID {
			return it, nil
		}
	}
	return nil, nil
}
func (f *fakePackItemRepo) List() ([]*entity.PackItem, error) { return f.items, nil }
func (f *fakePackItemRepo) ListByPack(packID string) ([]*entity.PackItem, error) {
	var out []*entity.PackItem
	for _, it := range f.items {
		if it.PackID == packID {
			out = append(out, it)
		}
	}
	return out, nil
}
func (f *fakePackItemRepo) Update(it *entity.PackItem) error {
	for i, existing := range f.items {
		if existing.ID == it.ID {
			f.items[i] = it
		}
	}
	return nil
}
func (f *fakePackItemRepo) Delete(id string) error {
	out := f.items[:0]
	for _, it := range f.items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	f.items = out
	return nil
}
