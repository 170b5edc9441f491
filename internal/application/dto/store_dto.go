package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateStoreRequest entrada para crear una tienda.
type CreateStoreRequest struct {
	Name           string `json:"name" validate:"required,min=1,max=200"`
	Location       string `json:"location" validate:"max=200"`
	ContactNumber  string `json:"contact_number" validate:"max=15"`
	ManagerID      *int64 `json:"manager_id"`
	OperatingHours int    `json:"operating_hours" validate:"min=1,max=24"`
}

// UpdateStoreRequest entrada para actualizar una tienda.
// Solo los campos no nil se aplican; TotalSales no es editable (lo mueve el registro de ventas).
type UpdateStoreRequest struct {
	Name           *string `json:"name"`
	Location       *string `json:"location"`
	ContactNumber  *string `json:"contact_number"`
	ManagerID      *int64  `json:"manager_id"`
	OperatingHours *int    `json:"operating_hours"`
}

// HasChanges indica si la petición trae al menos un campo a actualizar.
func (r UpdateStoreRequest) HasChanges() bool {
	return r.Name != nil || r.Location != nil || r.ContactNumber != nil ||
		r.ManagerID != nil || r.OperatingHours != nil
}

// StoreResponse representación HTTP de una tienda.
type StoreResponse struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Location       string    `json:"location"`
	ContactNumber  string    `json:"contact_number"`
	ManagerID      *int64    `json:"manager_id,omitempty"`
	TotalSales     int       `json:"total_sales"`
	OperatingHours int       `json:"operating_hours"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// StoreListResponse listado paginado de tiendas.
type StoreListResponse struct {
	Items []StoreResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// StorePerformanceDTO métricas de desempeño de una tienda.
type StorePerformanceDTO struct {
	StoreID             int64           `json:"store_id"`
	TotalSales          int             `json:"total_sales"`
	AverageSalesPerHour decimal.Decimal `json:"average_sales_per_hour"`
}

// StoreProductDTO producto almacenado en una tienda, con su cantidad.
type StoreProductDTO struct {
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}
