// Package memory implementa los repositorios del dominio sobre mapas en
// memoria. Se usa en tests y para correr la API sin base de datos.
package memory

import (
	"sort"
	"sync"

	"github.com/jhoicas/erp-api/internal/domain/entity"
	"github.com/jhoicas/erp-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo repositorio de productos en memoria.
type ProductRepo struct {
	mu    sync.RWMutex
	seq   int64
	items map[int64]*entity.Product
}

func NewProductRepository() *ProductRepo {
	return &ProductRepo{items: make(map[int64]*entity.Product)}
}

func (r *ProductRepo) Create(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	product.ID = r.seq
	cp := *product
	r.items[product.ID] = &cp
	return nil
}

func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *ProductRepo) Update(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[product.ID]; !ok {
		return nil
	}
	cp := *product
	r.items[product.ID] = &cp
	return nil
}

func (r *ProductRepo) UpdateReorderLevel(productID int64, level int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.items[productID]; ok {
		p.ReorderLevel = level
	}
	return nil
}

func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return paginate(sortedByID(r.items), limit, offset), nil
}

func (r *ProductRepo) ListBySupplier(supplierID int64) ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.Product
	for _, p := range sortedByID(r.items) {
		if p.SupplierID != nil && *p.SupplierID == supplierID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *ProductRepo) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

// sortedByID devuelve copias de los valores del mapa ordenadas por ID.
func sortedByID[T any](m map[int64]*T) []*T {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]*T, 0, len(ids))
	for _, id := range ids {
		cp := *m[id]
		out = append(out, &cp)
	}
	return out
}

func paginate[T any](list []*T, limit, offset int) []*T {
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}
