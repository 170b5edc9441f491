package memory

import (
	"sync"
	"time"

	"github.com/jhoicas/erp-api/internal/domain/entity"
	"github.com/jhoicas/erp-api/internal/domain/repository"
)

var _ repository.StockLocationRepository = (*StockLocationRepo)(nil)

type stockKey struct {
	productID int64
	storeID   int64
}

// StockLocationRepo stock por (producto, tienda) en memoria. El mapa con clave
// compuesta garantiza una fila por combinación, como el UNIQUE de la tabla.
type StockLocationRepo struct {
	mu    sync.RWMutex
	seq   int64
	items map[stockKey]*entity.StockLocation
}

func NewStockLocationRepository() *StockLocationRepo {
	return &StockLocationRepo{items: make(map[stockKey]*entity.StockLocation)}
}

// Get devuelve la fila de stock, o una fila en cero con ID = 0 si no existe.
func (r *StockLocationRepo) Get(productID, storeID int64) (*entity.StockLocation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sl, ok := r.items[stockKey{productID, storeID}]
	if !ok {
		return &entity.StockLocation{ProductID: productID, StoreID: storeID, Quantity: 0}, nil
	}
	cp := *sl
	return &cp, nil
}

// GetForUpdate en memoria no hay locks de fila; equivale a Get.
func (r *StockLocationRepo) GetForUpdate(productID, storeID int64) (*entity.StockLocation, error) {
	return r.Get(productID, storeID)
}

func (r *StockLocationRepo) Upsert(loc *entity.StockLocation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := stockKey{loc.ProductID, loc.StoreID}
	if existing, ok := r.items[key]; ok {
		existing.Quantity = loc.Quantity
		existing.UpdatedAt = time.Now()
		loc.ID = existing.ID
		return nil
	}
	r.seq++
	loc.ID = r.seq
	cp := *loc
	cp.CreatedAt = time.Now()
	cp.UpdatedAt = cp.CreatedAt
	r.items[key] = &cp
	return nil
}

func (r *StockLocationRepo) SumByProduct(productID int64) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	total := 0
	for key, sl := range r.items {
		if key.productID == productID {
			total += sl.Quantity
		}
	}
	return total, nil
}

func (r *StockLocationRepo) ListByProduct(productID int64) ([]*entity.StockLocation, error) {
	return r.listWhere(func(k stockKey) bool { return k.productID == productID })
}

func (r *StockLocationRepo) ListByStore(storeID int64) ([]*entity.StockLocation, error) {
	return r.listWhere(func(k stockKey) bool { return k.storeID == storeID })
}

func (r *StockLocationRepo) listWhere(match func(stockKey) bool) ([]*entity.StockLocation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	byID := make(map[int64]*entity.StockLocation)
	for key, sl := range r.items {
		if match(key) {
			byID[sl.ID] = sl
		}
	}
	return sortedByID(byID), nil
}
