package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de inventario.
// El stock total es derivado: suma de Quantity en StockLocation por tienda.
// ReorderLevel es el umbral bajo el cual se dispara la reposición.
type Product struct {
	ID               int64
	Name             string
	Category         string
	Price            decimal.Decimal // precio unitario de venta
	ReorderLevel     int
	LastPurchaseDate *time.Time
	SupplierID       *int64 // NULL si el proveedor fue eliminado (SET NULL)
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
