package entity

import "time"

// StockMovement es el registro de auditoría de una transferencia de stock entre tiendas.
// TransactionID (UUID) agrupa los efectos de una misma transacción.
type StockMovement struct {
	ID            int64
	TransactionID string
	ProductID     int64
	FromStoreID   int64
	ToStoreID     int64
	Quantity      int
	CreatedAt     time.Time
}
