package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSupplierRequest entrada para crear un proveedor.
type CreateSupplierRequest struct {
	Name           string `json:"name" validate:"required,min=1,max=200"`
	ContactDetails string `json:"contact_details" validate:"max=200"`
	Location       string `json:"location" validate:"max=200"`
	ContractTerms  string `json:"contract_terms" validate:"max=200"`
}

// UpdateSupplierRequest entrada para actualizar un proveedor.
// Solo los campos no nil se aplican.
type UpdateSupplierRequest struct {
	Name           *string `json:"name"`
	ContactDetails *string `json:"contact_details"`
	Location       *string `json:"location"`
	ContractTerms  *string `json:"contract_terms"`
}

// SupplierResponse representación HTTP de un proveedor.
type SupplierResponse struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	ContactDetails string    `json:"contact_details"`
	Location       string    `json:"location"`
	ContractTerms  string    `json:"contract_terms"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// SupplierListResponse listado paginado de proveedores.
type SupplierListResponse struct {
	Items []SupplierResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// SupplierPerformanceDTO métricas de órdenes entregadas en la ventana consultada.
type SupplierPerformanceDTO struct {
	SupplierID           int64           `json:"supplier_id"`
	DateRangeDays        int             `json:"date_range_days"`
	TotalDeliveredOrders int             `json:"total_delivered_orders"`
	TotalDeliveredAmount decimal.Decimal `json:"total_delivered_amount"`
	AverageOrderValue    decimal.Decimal `json:"average_order_value"`
}
