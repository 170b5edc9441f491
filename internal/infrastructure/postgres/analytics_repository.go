package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/erp-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para los reportes de desempeño.
// Los JOIN con products/staff son LEFT: una venta cuyo producto o empleado
// fue eliminado sigue contando en los totales.
type AnalyticsRepo struct {
	q Querier
}

func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// StoreSales total vendido por tienda en la ventana, ordenado por nombre.
func (r *AnalyticsRepo) StoreSales(ctx context.Context, start, end *time.Time) ([]repository.StoreSalesResult, error) {
	query := `
		SELECT st.name, COALESCE(SUM(s.total_amount), 0)
		FROM sales s
		JOIN stores st ON st.id = s.store_id
		WHERE ($1::timestamptz IS NULL OR s.date_of_sale >= $1)
		  AND ($2::timestamptz IS NULL OR s.date_of_sale <= $2)
		GROUP BY st.name
		ORDER BY st.name`
	rows, err := r.q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("store sales: %w", err)
	}
	defer rows.Close()
	var out []repository.StoreSalesResult
	for rows.Next() {
		var res repository.StoreSalesResult
		if err := rows.Scan(&res.StoreName, &res.TotalSales); err != nil {
			return nil, fmt.Errorf("scan store sales: %w", err)
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

// ProductSales total vendido por (tienda, producto) en la ventana, ordenado
// por nombre de producto. El producto eliminado aparece con nombre vacío.
func (r *AnalyticsRepo) ProductSales(ctx context.Context, start, end *time.Time) ([]repository.ProductSalesResult, error) {
	query := `
		SELECT st.name, COALESCE(p.name, ''), COALESCE(SUM(s.total_amount), 0)
		FROM sales s
		JOIN stores st ON st.id = s.store_id
		LEFT JOIN products p ON p.id = s.product_id
		WHERE ($1::timestamptz IS NULL OR s.date_of_sale >= $1)
		  AND ($2::timestamptz IS NULL OR s.date_of_sale <= $2)
		GROUP BY st.name, p.name
		ORDER BY COALESCE(p.name, ''), st.name`
	rows, err := r.q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("product sales: %w", err)
	}
	defer rows.Close()
	var out []repository.ProductSalesResult
	for rows.Next() {
		var res repository.ProductSalesResult
		if err := rows.Scan(&res.StoreName, &res.ProductName, &res.TotalSales); err != nil {
			return nil, fmt.Errorf("scan product sales: %w", err)
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

// SalesByDay serie diaria de ventas ordenada por fecha.
func (r *AnalyticsRepo) SalesByDay(ctx context.Context, start, end *time.Time) ([]repository.DailySalesResult, error) {
	query := `
		SELECT date_trunc('day', s.date_of_sale)::date, COALESCE(SUM(s.total_amount), 0)
		FROM sales s
		WHERE ($1::timestamptz IS NULL OR s.date_of_sale >= $1)
		  AND ($2::timestamptz IS NULL OR s.date_of_sale <= $2)
		GROUP BY 1
		ORDER BY 1`
	rows, err := r.q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("sales by day: %w", err)
	}
	defer rows.Close()
	var out []repository.DailySalesResult
	for rows.Next() {
		var res repository.DailySalesResult
		if err := rows.Scan(&res.Date, &res.TotalSales); err != nil {
			return nil, fmt.Errorf("scan daily sales: %w", err)
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

// TotalSales suma de montos del período; cero si no hay ventas.
func (r *AnalyticsRepo) TotalSales(ctx context.Context, start, end *time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(total_amount), 0)
		FROM sales
		WHERE ($1::timestamptz IS NULL OR date_of_sale >= $1)
		  AND ($2::timestamptz IS NULL OR date_of_sale <= $2)`
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query, start, end).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("total sales: %w", err)
	}
	return total, nil
}

// StaffSales suma, promedio y conteo de ventas de un empleado en la ventana.
func (r *AnalyticsRepo) StaffSales(ctx context.Context, staffID int64, start, end time.Time) (repository.StaffSalesStats, error) {
	query := `
		SELECT COALESCE(SUM(total_amount), 0), COALESCE(AVG(total_amount), 0), COUNT(*)
		FROM sales
		WHERE staff_id = $1 AND date_of_sale >= $2 AND date_of_sale <= $3`
	var stats repository.StaffSalesStats
	err := r.q.QueryRow(ctx, query, staffID, start, end).Scan(
		&stats.TotalSales, &stats.AveragePerSale, &stats.TransactionCount,
	)
	if err != nil {
		return repository.StaffSalesStats{}, fmt.Errorf("staff sales: %w", err)
	}
	return stats, nil
}

// SupplierDelivered conteo y monto de órdenes "Delivered" del proveedor con
// fecha de entrega dentro de la ventana.
func (r *AnalyticsRepo) SupplierDelivered(ctx context.Context, supplierID int64, start, end time.Time) (repository.SupplierDeliveredStats, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(total_amount), 0)
		FROM purchase_orders
		WHERE supplier_id = $1
		  AND status = 'Delivered'
		  AND delivery_date IS NOT NULL
		  AND delivery_date >= $2 AND delivery_date <= $3`
	var stats repository.SupplierDeliveredStats
	err := r.q.QueryRow(ctx, query, supplierID, start, end).Scan(&stats.OrderCount, &stats.TotalAmount)
	if err != nil {
		return repository.SupplierDeliveredStats{}, fmt.Errorf("supplier delivered: %w", err)
	}
	return stats, nil
}
