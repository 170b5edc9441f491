package dto

import "github.com/shopspring/decimal"

// StoreSalesDTO total vendido por una tienda en la ventana consultada.
type StoreSalesDTO struct {
	StoreName  string          `json:"store_name"`
	TotalSales decimal.Decimal `json:"total_sales"`
}

// ProductSalesDTO total vendido de un producto en una tienda en la ventana consultada.
type ProductSalesDTO struct {
	StoreName   string          `json:"store_name"`
	ProductName string          `json:"product_name"`
	TotalSales  decimal.Decimal `json:"total_sales"`
}

// SalesPerformanceDTO respuesta del reporte de desempeño de ventas:
// agregación por tienda y por (tienda, producto).
type SalesPerformanceDTO struct {
	StoreSales   []StoreSalesDTO   `json:"store_sales"`
	ProductSales []ProductSalesDTO `json:"product_sales"`
}

// DailySalesDTO total vendido en un día (serie para graficación).
type DailySalesDTO struct {
	Date       string          `json:"date"` // YYYY-MM-DD
	TotalSales decimal.Decimal `json:"total_sales"`
}
