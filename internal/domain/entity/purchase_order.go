package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados observados de una orden de compra. El campo es texto libre:
// otros valores son válidos, pero estos son los que produce y consulta el sistema.
const (
	OrderStatusPending   = "Pending"
	OrderStatusDelivered = "Delivered"
)

// PurchaseOrder representa una orden de reposición a un proveedor.
// La crea el flujo de reorden o un usuario manualmente; nunca se destruye de forma automática.
type PurchaseOrder struct {
	ID           int64
	ProductID    int64
	SupplierID   *int64 // NULL si el proveedor fue eliminado (SET NULL)
	TotalAmount  decimal.Decimal
	OrderDate    time.Time
	DeliveryDate *time.Time // NULL hasta que se conoce la fecha de entrega
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
