package repository

import "github.com/jhoicas/erp-api/internal/domain/entity"

// StoreRepository define el puerto de persistencia para Store.
type StoreRepository interface {
	Create(store *entity.Store) error
	GetByID(id int64) (*entity.Store, error)
	Update(store *entity.Store) error
	// IncrementTotalSales suma 1 al contador de ventas de la tienda.
	IncrementTotalSales(storeID int64) error
	List(limit, offset int) ([]*entity.Store, error)
	Delete(id int64) error
}
