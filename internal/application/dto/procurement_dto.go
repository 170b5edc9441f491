package dto

import "github.com/shopspring/decimal"

// TriggerPurchaseOrderRequest entrada del disparador de reorden.
type TriggerPurchaseOrderRequest struct {
	ProductID int64 `json:"productId" validate:"required"`
}

// ReorderResultDTO resultado tipado del disparador de reorden.
// Created=false indica el no-op informativo (stock suficiente); Message conserva
// el texto legible para humanos en ambos casos.
type ReorderResultDTO struct {
	Created         bool            `json:"created"`
	ProductID       int64           `json:"product_id"`
	PurchaseOrderID int64           `json:"purchase_order_id,omitempty"`
	CurrentStock    int             `json:"current_stock"`
	ReorderLevel    int             `json:"reorder_level"`
	Quantity        int             `json:"quantity,omitempty"`
	TotalAmount     decimal.Decimal `json:"total_amount,omitempty"`
	Message         string          `json:"message"`
}
