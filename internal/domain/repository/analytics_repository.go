package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// StoreSalesResult resultado crudo de la agregación de ventas por tienda.
// Lo produce la DB; el use case lo convierte en DTO.
type StoreSalesResult struct {
	StoreName  string
	TotalSales decimal.Decimal
}

// ProductSalesResult resultado crudo de la agregación de ventas por (tienda, producto).
// ProductName queda vacío para ventas cuyo producto fue eliminado (FK en NULL).
type ProductSalesResult struct {
	StoreName   string
	ProductName string
	TotalSales  decimal.Decimal
}

// DailySalesResult resultado crudo de la serie diaria de ventas.
type DailySalesResult struct {
	Date       time.Time
	TotalSales decimal.Decimal
}

// StaffSalesStats métricas de ventas de un empleado en una ventana de tiempo.
type StaffSalesStats struct {
	TotalSales       decimal.Decimal // suma de montos
	AveragePerSale   decimal.Decimal // promedio por transacción (0 si no hay ventas)
	TransactionCount int
}

// SupplierDeliveredStats métricas de órdenes entregadas de un proveedor en una ventana.
type SupplierDeliveredStats struct {
	OrderCount  int
	TotalAmount decimal.Decimal
}

// AnalyticsRepository define las consultas de lectura para reportes de desempeño.
// Las implementaciones son read-only (no modifican datos). Los parámetros start/end
// acotan la fecha de forma inclusiva; nil significa sin cota en ese lado.
type AnalyticsRepository interface {
	// StoreSales devuelve el total vendido por tienda, ordenado por nombre de tienda.
	StoreSales(ctx context.Context, start, end *time.Time) ([]StoreSalesResult, error)

	// ProductSales devuelve el total vendido por (tienda, producto),
	// ordenado por nombre de producto.
	ProductSales(ctx context.Context, start, end *time.Time) ([]ProductSalesResult, error)

	// SalesByDay devuelve la serie diaria de ventas ordenada por fecha.
	SalesByDay(ctx context.Context, start, end *time.Time) ([]DailySalesResult, error)

	// TotalSales devuelve la suma de montos del período; cero si no hay filas.
	TotalSales(ctx context.Context, start, end *time.Time) (decimal.Decimal, error)

	// StaffSales devuelve suma, promedio y conteo de ventas de un empleado en la ventana.
	StaffSales(ctx context.Context, staffID int64, start, end time.Time) (StaffSalesStats, error)

	// SupplierDelivered devuelve conteo y monto total de órdenes "Delivered"
	// de productos del proveedor con fecha de entrega en la ventana.
	SupplierDelivered(ctx context.Context, supplierID int64, start, end time.Time) (SupplierDeliveredStats, error)
}
