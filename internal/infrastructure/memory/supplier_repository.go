package memory

import (
	"sync"

	"github.com/jhoicas/erp-api/internal/domain/entity"
	"github.com/jhoicas/erp-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo repositorio de proveedores en memoria.
type SupplierRepo struct {
	mu    sync.RWMutex
	seq   int64
	items map[int64]*entity.Supplier
}

func NewSupplierRepository() *SupplierRepo {
	return &SupplierRepo{items: make(map[int64]*entity.Supplier)}
}

func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	supplier.ID = r.seq
	cp := *supplier
	r.items[supplier.ID] = &cp
	return nil
}

func (r *SupplierRepo) GetByID(id int64) (*entity.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *SupplierRepo) Update(supplier *entity.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[supplier.ID]; !ok {
		return nil
	}
	cp := *supplier
	r.items[supplier.ID] = &cp
	return nil
}

func (r *SupplierRepo) List(limit, offset int) ([]*entity.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return paginate(sortedByID(r.items), limit, offset), nil
}

func (r *SupplierRepo) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}
