package memory

import (
	"sync"

	"github.com/jhoicas/erp-api/internal/domain/entity"
	"github.com/jhoicas/erp-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo registro de movimientos de stock en memoria.
type StockMovementRepo struct {
	mu    sync.RWMutex
	seq   int64
	items map[int64]*entity.StockMovement
}

func NewStockMovementRepository() *StockMovementRepo {
	return &StockMovementRepo{items: make(map[int64]*entity.StockMovement)}
}

func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	movement.ID = r.seq
	cp := *movement
	r.items[movement.ID] = &cp
	return nil
}

func (r *StockMovementRepo) ListByProduct(productID int64) ([]*entity.StockMovement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	byID := make(map[int64]*entity.StockMovement)
	for id, m := range r.items {
		if m.ProductID == productID {
			byID[id] = m
		}
	}
	list := sortedByID(byID)
	for i, j := 0, len(list)-1; i < j; i, j = i+1, j-1 {
		list[i], list[j] = list[j], list[i]
	}
	return list, nil
}
