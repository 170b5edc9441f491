package memory

import (
	"sync"
	"time"

	"github.com/jhoicas/erp-api/internal/domain/entity"
	"github.com/jhoicas/erp-api/internal/domain/repository"
)

var _ repository.SalesRepository = (*SalesRepo)(nil)

// SalesRepo repositorio de ventas en memoria.
type SalesRepo struct {
	mu    sync.RWMutex
	seq   int64
	items map[int64]*entity.Sale
}

func NewSalesRepository() *SalesRepo {
	return &SalesRepo{items: make(map[int64]*entity.Sale)}
}

func (r *SalesRepo) Create(sale *entity.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	sale.ID = r.seq
	cp := *sale
	r.items[sale.ID] = &cp
	return nil
}

func (r *SalesRepo) GetByID(id int64) (*entity.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

// List ventas en la ventana [start, end), más recientes primero.
func (r *SalesRepo) List(start, end *time.Time, limit, offset int) ([]*entity.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	byID := make(map[int64]*entity.Sale)
	for id, s := range r.items {
		if start != nil && s.DateOfSale.Before(*start) {
			continue
		}
		if end != nil && !s.DateOfSale.Before(*end) {
			continue
		}
		byID[id] = s
	}
	list := sortedByID(byID)
	// Orden inverso: más reciente primero (los IDs crecen con el tiempo).
	for i, j := 0, len(list)-1; i < j; i, j = i+1, j-1 {
		list[i], list[j] = list[j], list[i]
	}
	return paginate(list, limit, offset), nil
}
