package repository

import "github.com/jhoicas/erp-api/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier.
// Delete desasocia los productos del proveedor (SET NULL), no los elimina.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id int64) (*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	List(limit, offset int) ([]*entity.Supplier, error)
	Delete(id int64) error
}
