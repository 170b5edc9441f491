package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/erp-api/internal/application/dto"
	"github.com/jhoicas/erp-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// SalesPerformanceUseCase produce los reportes agregados de ventas para graficación.
type SalesPerformanceUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewSalesPerformanceUseCase construye el caso de uso.
func NewSalesPerformanceUseCase(analyticsRepo repository.AnalyticsRepository) *SalesPerformanceUseCase {
	return &SalesPerformanceUseCase{analyticsRepo: analyticsRepo}
}

// ViewSalesPerformance devuelve dos agregaciones sobre la ventana [start, end]
// (cotas inclusivas, nil = sin cota): total por tienda ordenado por nombre de
// tienda, y total por (tienda, producto) ordenado por nombre de producto.
// Una ventana sin ventas devuelve listas vacías, no error.
func (uc *SalesPerformanceUseCase) ViewSalesPerformance(ctx context.Context, start, end *time.Time) (*dto.SalesPerformanceDTO, error) {
	storeRows, err := uc.analyticsRepo.StoreSales(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("ventas por tienda: %w", err)
	}
	productRows, err := uc.analyticsRepo.ProductSales(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("ventas por producto: %w", err)
	}

	out := &dto.SalesPerformanceDTO{
		StoreSales:   make([]dto.StoreSalesDTO, 0, len(storeRows)),
		ProductSales: make([]dto.ProductSalesDTO, 0, len(productRows)),
	}
	for _, r := range storeRows {
		out.StoreSales = append(out.StoreSales, dto.StoreSalesDTO{
			StoreName:  r.StoreName,
			TotalSales: r.TotalSales,
		})
	}
	for _, r := range productRows {
		out.ProductSales = append(out.ProductSales, dto.ProductSalesDTO{
			StoreName:   r.StoreName,
			ProductName: r.ProductName,
			TotalSales:  r.TotalSales,
		})
	}
	return out, nil
}

// SalesByDay devuelve la serie diaria de ventas de la ventana, ordenada por fecha.
func (uc *SalesPerformanceUseCase) SalesByDay(ctx context.Context, start, end *time.Time) ([]dto.DailySalesDTO, error) {
	rows, err := uc.analyticsRepo.SalesByDay(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("serie diaria de ventas: %w", err)
	}
	out := make([]dto.DailySalesDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.DailySalesDTO{
			Date:       r.Date.Format("2006-01-02"),
			TotalSales: r.TotalSales,
		})
	}
	return out, nil
}

// TotalSales devuelve la suma de montos de la ventana; cero si no hay ventas.
func (uc *SalesPerformanceUseCase) TotalSales(ctx context.Context, start, end *time.Time) (decimal.Decimal, error) {
	total, err := uc.analyticsRepo.TotalSales(ctx, start, end)
	if err != nil {
		return decimal.Zero, fmt.Errorf("total de ventas: %w", err)
	}
	return total, nil
}
