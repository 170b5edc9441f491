package dto

// TransferStockRequest entrada para transferir stock de un producto entre tiendas.
type TransferStockRequest struct {
	ProductID   int64 `json:"product_id" validate:"required"`
	FromStoreID int64 `json:"from_store_id" validate:"required"`
	ToStoreID   int64 `json:"to_store_id" validate:"required"`
	Quantity    int   `json:"quantity" validate:"required,gt=0"`
}

// AdjustStockRequest entrada para ajustar el stock de un producto en una tienda.
// Quantity positiva incrementa, negativa decrementa; el resultado nunca baja de cero.
type AdjustStockRequest struct {
	ProductID int64 `json:"product_id" validate:"required"`
	StoreID   int64 `json:"store_id" validate:"required"`
	Quantity  int   `json:"quantity" validate:"required"`
}

// StockLocationResponse estado final de una fila de stock tras una operación.
type StockLocationResponse struct {
	ProductID int64 `json:"product_id"`
	StoreID   int64 `json:"store_id"`
	Quantity  int   `json:"quantity"`
}
