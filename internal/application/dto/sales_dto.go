package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest entrada para registrar una venta.
type CreateSaleRequest struct {
	PaymentMethod string          `json:"payment_method" validate:"max=200"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	StoreID       int64           `json:"store_id" validate:"required"`
	ProductID     *int64          `json:"product_id"`
	StaffID       *int64          `json:"staff_id"`
}

// SaleResponse representación HTTP de una venta.
type SaleResponse struct {
	ID            int64           `json:"id"`
	PaymentMethod string          `json:"payment_method"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	StoreID       int64           `json:"store_id"`
	ProductID     *int64          `json:"product_id,omitempty"`
	StaffID       *int64          `json:"staff_id,omitempty"`
	DateOfSale    time.Time       `json:"date_of_sale"`
}

// SaleListResponse listado paginado de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
