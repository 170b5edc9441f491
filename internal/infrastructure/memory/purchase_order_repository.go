package memory

import (
	"sync"

	"github.com/jhoicas/erp-api/internal/domain/entity"
	"github.com/jhoicas/erp-api/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// PurchaseOrderRepo repositorio de órdenes de compra en memoria.
type PurchaseOrderRepo struct {
	mu    sync.RWMutex
	seq   int64
	items map[int64]*entity.PurchaseOrder
}

func NewPurchaseOrderRepository() *PurchaseOrderRepo {
	return &PurchaseOrderRepo{items: make(map[int64]*entity.PurchaseOrder)}
}

func (r *PurchaseOrderRepo) Create(order *entity.PurchaseOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	order.ID = r.seq
	cp := *order
	r.items[order.ID] = &cp
	return nil
}

func (r *PurchaseOrderRepo) GetByID(id int64) (*entity.PurchaseOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *PurchaseOrderRepo) Update(order *entity.PurchaseOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[order.ID]; !ok {
		return nil
	}
	cp := *order
	r.items[order.ID] = &cp
	return nil
}

func (r *PurchaseOrderRepo) List(limit, offset int) ([]*entity.PurchaseOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return paginate(sortedByID(r.items), limit, offset), nil
}

func (r *PurchaseOrderRepo) ListByProduct(productID int64) ([]*entity.PurchaseOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.PurchaseOrder
	for _, o := range sortedByID(r.items) {
		if o.ProductID == productID {
			out = append(out, o)
		}
	}
	return out, nil
}
