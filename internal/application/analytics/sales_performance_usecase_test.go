package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/erp-api/internal/application/analytics"
	"github.com/jhoicas/erp-api/internal/domain/entity"
	"github.com/jhoicas/erp-api/internal/infrastructure/memory"
)

type analyticsFixture struct {
	uc       *analytics.SalesPerformanceUseCase
	sales    *memory.SalesRepo
	stores   *memory.StoreRepo
	products *memory.ProductRepo
}

func newAnalyticsFixture() *analyticsFixture {
	sales := memory.NewSalesRepository()
	stores := memory.NewStoreRepository()
	products := memory.NewProductRepository()
	repo := memory.NewAnalyticsRepository(sales, stores, products, memory.NewPurchaseOrderRepository())
	return &analyticsFixture{
		uc:       analytics.NewSalesPerformanceUseCase(repo),
		sales:    sales,
		stores:   stores,
		products: products,
	}
}

func (f *analyticsFixture) seedStore(t *testing.T, name string) *entity.Store {
	t.Helper()
	s := &entity.Store{Name: name, OperatingHours: 8}
	require.NoError(t, f.stores.Create(s))
	return s
}

func (f *analyticsFixture) seedProduct(t *testing.T, name string) *entity.Product {
	t.Helper()
	p := &entity.Product{Name: name, Price: decimal.NewFromInt(10)}
	require.NoError(t, f.products.Create(p))
	return p
}

func (f *analyticsFixture) seedSale(t *testing.T, storeID int64, productID *int64, amount string, when time.Time) {
	t.Helper()
	require.NoError(t, f.sales.Create(&entity.Sale{
		TotalAmount: decimal.RequireFromString(amount),
		StoreID:     storeID,
		ProductID:   productID,
		DateOfSale:  when,
	}))
}

// ──────────────────────────────────────────────────────────────────────────────
// ViewSalesPerformance
// ──────────────────────────────────────────────────────────────────────────────

func TestViewSalesPerformance_AgregaPorTiendaYProducto(t *testing.T) {
	f := newAnalyticsFixture()
	centro := f.seedStore(t, "Centro")
	norte := f.seedStore(t, "Norte")
	cafe := f.seedProduct(t, "Café")
	azucar := f.seedProduct(t, "Azúcar")
	when := time.Date(2026, 8, 10, 15, 0, 0, 0, time.UTC)

	f.seedSale(t, centro.ID, &cafe.ID, "100", when)
	f.seedSale(t, centro.ID, &cafe.ID, "50", when)
	f.seedSale(t, centro.ID, &azucar.ID, "25", when)
	f.seedSale(t, norte.ID, &cafe.ID, "10", when)

	out, err := f.uc.ViewSalesPerformance(context.Background(), nil, nil)
	require.NoError(t, err)

	require.Len(t, out.StoreSales, 2)
	assert.Equal(t, "Centro", out.StoreSales[0].StoreName)
	assert.True(t, out.StoreSales[0].TotalSales.Equal(decimal.RequireFromString("175")))
	assert.Equal(t, "Norte", out.StoreSales[1].StoreName)
	assert.True(t, out.StoreSales[1].TotalSales.Equal(decimal.RequireFromString("10")))

	require.Len(t, out.ProductSales, 3)
	// Orden por nombre de producto, luego tienda.
	assert.Equal(t, "Azúcar", out.ProductSales[0].ProductName)
	assert.Equal(t, "Café", out.ProductSales[1].ProductName)
	assert.Equal(t, "Centro", out.ProductSales[1].StoreName)
	assert.True(t, out.ProductSales[1].TotalSales.Equal(decimal.RequireFromString("150")))
	assert.Equal(t, "Norte", out.ProductSales[2].StoreName)
}

func TestViewSalesPerformance_VentanaSinVentasDevuelveListasVacias(t *testing.T) {
	f := newAnalyticsFixture()
	centro := f.seedStore(t, "Centro")
	f.seedSale(t, centro.ID, nil, "100", time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC))

	start := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2027, 2, 1, 0, 0, 0, 0, time.UTC)
	out, err := f.uc.ViewSalesPerformance(context.Background(), &start, &end)
	require.NoError(t, err)

	assert.NotNil(t, out.StoreSales)
	assert.Empty(t, out.StoreSales)
	assert.NotNil(t, out.ProductSales)
	assert.Empty(t, out.ProductSales)
}

func TestViewSalesPerformance_VentaSinProductoCuentaConNombreVacio(t *testing.T) {
	f := newAnalyticsFixture()
	centro := f.seedStore(t, "Centro")
	f.seedSale(t, centro.ID, nil, "40", time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC))

	out, err := f.uc.ViewSalesPerformance(context.Background(), nil, nil)
	require.NoError(t, err)

	require.Len(t, out.ProductSales, 1)
	assert.Equal(t, "", out.ProductSales[0].ProductName,
		"las ventas de productos eliminados siguen contando")
	assert.True(t, out.ProductSales[0].TotalSales.Equal(decimal.RequireFromString("40")))
}

// ──────────────────────────────────────────────────────────────────────────────
// SalesByDay / TotalSales
// ──────────────────────────────────────────────────────────────────────────────

func TestSalesByDay_SerieOrdenadaPorFecha(t *testing.T) {
	f := newAnalyticsFixture()
	centro := f.seedStore(t, "Centro")
	f.seedSale(t, centro.ID, nil, "10", time.Date(2026, 8, 2, 9, 0, 0, 0, time.UTC))
	f.seedSale(t, centro.ID, nil, "20", time.Date(2026, 8, 2, 17, 0, 0, 0, time.UTC))
	f.seedSale(t, centro.ID, nil, "5", time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))

	out, err := f.uc.SalesByDay(context.Background(), nil, nil)
	require.NoError(t, err)

	require.Len(t, out, 2)
	assert.Equal(t, "2026-08-01", out[0].Date)
	assert.True(t, out[0].TotalSales.Equal(decimal.RequireFromString("5")))
	assert.Equal(t, "2026-08-02", out[1].Date)
	assert.True(t, out[1].TotalSales.Equal(decimal.RequireFromString("30")),
		"las ventas del mismo día se agrupan")
}

func TestTotalSales_SumaDeLaVentana(t *testing.T) {
	f := newAnalyticsFixture()
	centro := f.seedStore(t, "Centro")
	f.seedSale(t, centro.ID, nil, "10.25", time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))
	f.seedSale(t, centro.ID, nil, "5.75", time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC))
	f.seedSale(t, centro.ID, nil, "99", time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))

	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 31, 23, 59, 59, 0, time.UTC)
	total, err := f.uc.TotalSales(context.Background(), &start, &end)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("16")), "10.25 + 5.75 = 16; got %s", total)
}

func TestTotalSales_SinVentasEsCero(t *testing.T) {
	f := newAnalyticsFixture()
	total, err := f.uc.TotalSales(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.True(t, total.IsZero())
}
