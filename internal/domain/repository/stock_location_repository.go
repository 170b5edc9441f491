package repository

import "github.com/jhoicas/erp-api/internal/domain/entity"

// StockLocationRepository define el puerto para consultar/actualizar el stock
// de un producto por tienda. Usado dentro de transacciones para garantizar consistencia.
// Get y GetForUpdate devuelven una fila con Quantity=0 (ID=0) si el par no existe aún.
type StockLocationRepository interface {
	Get(productID, storeID int64) (*entity.StockLocation, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	GetForUpdate(productID, storeID int64) (*entity.StockLocation, error)
	// Upsert inserta o fija la cantidad final de la fila (producto, tienda).
	Upsert(loc *entity.StockLocation) error
	// SumByProduct devuelve el stock total del producto sumando todas las tiendas.
	SumByProduct(productID int64) (int, error)
	ListByProduct(productID int64) ([]*entity.StockLocation, error)
	ListByStore(storeID int64) ([]*entity.StockLocation, error)
}
