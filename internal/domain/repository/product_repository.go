package repository

import "github.com/jhoicas/erp-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID devuelve (nil, nil) si el producto no existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateReorderLevel actualiza solo el umbral de reorden (usado por EditReorderLevel).
	UpdateReorderLevel(productID int64, level int) error
	List(limit, offset int) ([]*entity.Product, error)
	// ListBySupplier devuelve los productos asociados a un proveedor.
	ListBySupplier(supplierID int64) ([]*entity.Product, error)
	Delete(id int64) error
}
