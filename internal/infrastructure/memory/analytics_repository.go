package memory

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/erp-api/internal/domain/entity"
	"github.com/jhoicas/erp-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo calcula los reportes agregando sobre los repos en memoria.
// Replica la semántica de las consultas SQL: las cotas start/end son
// inclusivas y las ventas de productos o empleados eliminados cuentan.
type AnalyticsRepo struct {
	sales    *SalesRepo
	stores   *StoreRepo
	products *ProductRepo
	orders   *PurchaseOrderRepo
}

func NewAnalyticsRepository(sales *SalesRepo, stores *StoreRepo, products *ProductRepo, orders *PurchaseOrderRepo) *AnalyticsRepo {
	return &AnalyticsRepo{sales: sales, stores: stores, products: products, orders: orders}
}

func inWindow(t time.Time, start, end *time.Time) bool {
	if start != nil && t.Before(*start) {
		return false
	}
	if end != nil && t.After(*end) {
		return false
	}
	return true
}

func (r *AnalyticsRepo) eachSale(start, end *time.Time, fn func(*entity.Sale)) {
	r.sales.mu.RLock()
	defer r.sales.mu.RUnlock()
	for _, s := range r.sales.items {
		if inWindow(s.DateOfSale, start, end) {
			fn(s)
		}
	}
}

func (r *AnalyticsRepo) storeName(id int64) string {
	r.stores.mu.RLock()
	defer r.stores.mu.RUnlock()
	if s, ok := r.stores.items[id]; ok {
		return s.Name
	}
	return ""
}

func (r *AnalyticsRepo) productName(id *int64) string {
	if id == nil {
		return ""
	}
	r.products.mu.RLock()
	defer r.products.mu.RUnlock()
	if p, ok := r.products.items[*id]; ok {
		return p.Name
	}
	return ""
}

func (r *AnalyticsRepo) StoreSales(ctx context.Context, start, end *time.Time) ([]repository.StoreSalesResult, error) {
	totals := make(map[string]decimal.Decimal)
	r.eachSale(start, end, func(s *entity.Sale) {
		name := r.storeName(s.StoreID)
		totals[name] = totals[name].Add(s.TotalAmount)
	})
	out := make([]repository.StoreSalesResult, 0, len(totals))
	for name, total := range totals {
		out = append(out, repository.StoreSalesResult{StoreName: name, TotalSales: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StoreName < out[j].StoreName })
	return out, nil
}

func (r *AnalyticsRepo) ProductSales(ctx context.Context, start, end *time.Time) ([]repository.ProductSalesResult, error) {
	type key struct{ store, product string }
	totals := make(map[key]decimal.Decimal)
	r.eachSale(start, end, func(s *entity.Sale) {
		k := key{store: r.storeName(s.StoreID), product: r.productName(s.ProductID)}
		totals[k] = totals[k].Add(s.TotalAmount)
	})
	out := make([]repository.ProductSalesResult, 0, len(totals))
	for k, total := range totals {
		out = append(out, repository.ProductSalesResult{StoreName: k.store, ProductName: k.product, TotalSales: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ProductName != out[j].ProductName {
			return out[i].ProductName < out[j].ProductName
		}
		return out[i].StoreName < out[j].StoreName
	})
	return out, nil
}

func (r *AnalyticsRepo) SalesByDay(ctx context.Context, start, end *time.Time) ([]repository.DailySalesResult, error) {
	totals := make(map[time.Time]decimal.Decimal)
	r.eachSale(start, end, func(s *entity.Sale) {
		day := s.DateOfSale.Truncate(24 * time.Hour)
		totals[day] = totals[day].Add(s.TotalAmount)
	})
	out := make([]repository.DailySalesResult, 0, len(totals))
	for day, total := range totals {
		out = append(out, repository.DailySalesResult{Date: day, TotalSales: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *AnalyticsRepo) TotalSales(ctx context.Context, start, end *time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	r.eachSale(start, end, func(s *entity.Sale) {
		total = total.Add(s.TotalAmount)
	})
	return total, nil
}

func (r *AnalyticsRepo) StaffSales(ctx context.Context, staffID int64, start, end time.Time) (repository.StaffSalesStats, error) {
	var stats repository.StaffSalesStats
	stats.TotalSales = decimal.Zero
	stats.AveragePerSale = decimal.Zero
	r.eachSale(&start, &end, func(s *entity.Sale) {
		if s.StaffID != nil && *s.StaffID == staffID {
			stats.TotalSales = stats.TotalSales.Add(s.TotalAmount)
			stats.TransactionCount++
		}
	})
	if stats.TransactionCount > 0 {
		stats.AveragePerSale = stats.TotalSales.Div(decimal.NewFromInt(int64(stats.TransactionCount)))
	}
	return stats, nil
}

func (r *AnalyticsRepo) SupplierDelivered(ctx context.Context, supplierID int64, start, end time.Time) (repository.SupplierDeliveredStats, error) {
	stats := repository.SupplierDeliveredStats{TotalAmount: decimal.Zero}
	r.orders.mu.RLock()
	defer r.orders.mu.RUnlock()
	for _, o := range r.orders.items {
		if o.SupplierID == nil || *o.SupplierID != supplierID {
			continue
		}
		if o.Status != entity.OrderStatusDelivered || o.DeliveryDate == nil {
			continue
		}
		if o.DeliveryDate.Before(start) || o.DeliveryDate.After(end) {
			continue
		}
		stats.OrderCount++
		stats.TotalAmount = stats.TotalAmount.Add(o.TotalAmount)
	}
	return stats, nil
}
