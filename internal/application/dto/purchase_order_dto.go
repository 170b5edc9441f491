package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePurchaseOrderRequest entrada para crear una orden de compra manual.
// Status vacío queda en "Pending"; DeliveryDate nil queda en NULL.
type CreatePurchaseOrderRequest struct {
	ProductID    int64           `json:"product_id" validate:"required"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	DeliveryDate *time.Time      `json:"delivery_date"`
	Status       string          `json:"status"`
}

// UpdatePurchaseOrderRequest entrada para actualizar una orden de compra.
// Solo los campos no nil se aplican; producto y proveedor no son editables.
type UpdatePurchaseOrderRequest struct {
	TotalAmount  *decimal.Decimal `json:"total_amount"`
	DeliveryDate *time.Time       `json:"delivery_date"`
	Status       *string          `json:"status"`
}

// PurchaseOrderResponse representación HTTP de una orden de compra.
type PurchaseOrderResponse struct {
	ID           int64           `json:"id"`
	ProductID    int64           `json:"product_id"`
	SupplierID   *int64          `json:"supplier_id,omitempty"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	OrderDate    time.Time       `json:"order_date"`
	DeliveryDate *time.Time      `json:"delivery_date,omitempty"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// PurchaseOrderListResponse listado paginado de órdenes de compra.
type PurchaseOrderListResponse struct {
	Items []PurchaseOrderResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}
