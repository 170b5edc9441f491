package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta registrada en una tienda.
// ProductID y StaffID pueden quedar en NULL si el producto o el empleado se eliminan.
type Sale struct {
	ID            int64
	PaymentMethod string
	TotalAmount   decimal.Decimal
	StoreID       int64
	ProductID     *int64
	StaffID       *int64
	DateOfSale    time.Time
	CreatedAt     time.Time
}
