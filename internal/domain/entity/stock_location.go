package entity

import "time"

// StockLocation representa la cantidad de un producto en una tienda.
// Existe una única fila por par (producto, tienda); Quantity nunca es negativa.
type StockLocation struct {
	ID        int64
	ProductID int64
	StoreID   int64
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}
