package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name         string          `json:"name" validate:"required,min=1,max=200"`
	Category     string          `json:"category" validate:"max=100"`
	Price        decimal.Decimal `json:"price"`
	ReorderLevel int             `json:"reorder_level" validate:"min=0"`
	SupplierID   *int64          `json:"supplier_id"`
}

// UpdateProductRequest entrada para actualizar un producto.
// Solo los campos no nil se aplican; ReorderLevel se cambia vía EditReorderLevel.
type UpdateProductRequest struct {
	Name       *string          `json:"name"`
	Category   *string          `json:"category"`
	Price      *decimal.Decimal `json:"price"`
	SupplierID *int64           `json:"supplier_id"`
}

// EditReorderLevelRequest entrada para cambiar el umbral de reorden.
type EditReorderLevelRequest struct {
	ReorderLevel int `json:"reorder_level" validate:"min=0"`
}

// ProductResponse representación HTTP de un producto.
type ProductResponse struct {
	ID               int64           `json:"id"`
	Name             string          `json:"name"`
	Category         string          `json:"category"`
	Price            decimal.Decimal `json:"price"`
	ReorderLevel     int             `json:"reorder_level"`
	LastPurchaseDate *time.Time      `json:"last_purchase_date,omitempty"`
	SupplierID       *int64          `json:"supplier_id,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// ProductStockResponse stock total derivado de un producto.
type ProductStockResponse struct {
	ProductID  int64 `json:"product_id"`
	StockLevel int   `json:"stock_level"`
}

// ProductStoreDTO tienda que almacena un producto, con su cantidad.
type ProductStoreDTO struct {
	StoreID   int64  `json:"store_id"`
	StoreName string `json:"store_name"`
	Location  string `json:"location"`
	Quantity  int    `json:"quantity"`
}
