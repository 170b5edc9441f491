package repository

import "github.com/jhoicas/erp-api/internal/domain/entity"

// PurchaseOrderRepository define el puerto de persistencia para PurchaseOrder.
// Las órdenes nunca se destruyen de forma automática; no hay Delete.
type PurchaseOrderRepository interface {
	Create(order *entity.PurchaseOrder) error
	GetByID(id int64) (*entity.PurchaseOrder, error)
	Update(order *entity.PurchaseOrder) error
	List(limit, offset int) ([]*entity.PurchaseOrder, error)
	ListByProduct(productID int64) ([]*entity.PurchaseOrder, error)
}
