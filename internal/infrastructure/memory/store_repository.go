package memory

import (
	"sync"

	"github.com/jhoicas/erp-api/internal/domain/entity"
	"github.com/jhoicas/erp-api/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo repositorio de tiendas en memoria.
type StoreRepo struct {
	mu    sync.RWMutex
	seq   int64
	items map[int64]*entity.Store
}

func NewStoreRepository() *StoreRepo {
	return &StoreRepo{items: make(map[int64]*entity.Store)}
}

func (r *StoreRepo) Create(store *entity.Store) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	store.ID = r.seq
	cp := *store
	r.items[store.ID] = &cp
	return nil
}

func (r *StoreRepo) GetByID(id int64) (*entity.Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *StoreRepo) Update(store *entity.Store) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[store.ID]; !ok {
		return nil
	}
	cp := *store
	r.items[store.ID] = &cp
	return nil
}

func (r *StoreRepo) IncrementTotalSales(storeID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.items[storeID]; ok {
		s.TotalSales++
	}
	return nil
}

func (r *StoreRepo) List(limit, offset int) ([]*entity.Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return paginate(sortedByID(r.items), limit, offset), nil
}

func (r *StoreRepo) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}
