package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/erp-api/internal/application/analytics"
	"github.com/jhoicas/erp-api/internal/application/inventory"
	"github.com/jhoicas/erp-api/internal/application/procurement"
	"github.com/jhoicas/erp-api/internal/application/usecase"
	"github.com/jhoicas/erp-api/internal/domain/entity"
	"github.com/jhoicas/erp-api/internal/infrastructure/memory"
	apihttp "github.com/jhoicas/erp-api/internal/interfaces/http"
)

type apiFixture struct {
	app       *fiber.App
	products  *memory.ProductRepo
	stores    *memory.StoreRepo
	suppliers *memory.SupplierRepo
	stock     *memory.StockLocationRepo
	sales     *memory.SalesRepo
	orders    *memory.PurchaseOrderRepo
}

// newAPIFixture arma la aplicación completa sobre repos en memoria,
// con el mismo cableado de dependencias que cmd/api.
func newAPIFixture() *apiFixture {
	products := memory.NewProductRepository()
	stores := memory.NewStoreRepository()
	suppliers := memory.NewSupplierRepository()
	staff := memory.NewStaffRepository()
	departments := memory.NewDepartmentRepository()
	stock := memory.NewStockLocationRepository()
	movements := memory.NewStockMovementRepository()
	sales := memory.NewSalesRepository()
	orders := memory.NewPurchaseOrderRepository()
	analyticsRepo := memory.NewAnalyticsRepository(sales, stores, products, orders)
	txRunner := memory.NewTxRunner(stock, movements)

	app := fiber.New()
	apihttp.Router(app, apihttp.RouterDeps{
		ProductUC:       usecase.NewProductUseCase(products, stock, stores, suppliers),
		StoreUC:         usecase.NewStoreUseCase(stores, stock, products, staff),
		SupplierUC:      usecase.NewSupplierUseCase(suppliers, products, analyticsRepo),
		StaffUC:         usecase.NewStaffUseCase(staff, departments, analyticsRepo),
		DepartmentUC:    usecase.NewDepartmentUseCase(departments, staff),
		PurchaseOrderUC: usecase.NewPurchaseOrderUseCase(orders, products),
		SalesUC:         usecase.NewSalesUseCase(sales, stores),
		TransferStock:   inventory.NewTransferStockUseCase(txRunner, products, stores),
		Reorder:         procurement.NewReorderUseCase(products, stock, suppliers, orders),
		SalesPerf:       analytics.NewSalesPerformanceUseCase(analyticsRepo),
	})
	return &apiFixture{
		app:       app,
		products:  products,
		stores:    stores,
		suppliers: suppliers,
		stock:     stock,
		sales:     sales,
		orders:    orders,
	}
}

func (f *apiFixture) postJSON(t *testing.T, path string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func (f *apiFixture) get(t *testing.T, path string) *http.Response {
	t.Helper()
	resp, err := f.app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out), "cuerpo: %s", raw)
}

func (f *apiFixture) seedLowStockProduct(t *testing.T) *entity.Product {
	t.Helper()
	supplier := &entity.Supplier{Name: "Distribuidora Andes"}
	require.NoError(t, f.suppliers.Create(supplier))
	product := &entity.Product{
		Name:         "Café",
		Price:        decimal.NewFromInt(20),
		ReorderLevel: 10,
		SupplierID:   &supplier.ID,
	}
	require.NoError(t, f.products.Create(product))
	store := &entity.Store{Name: "Centro", OperatingHours: 8}
	require.NoError(t, f.stores.Create(store))
	require.NoError(t, f.stock.Upsert(&entity.StockLocation{
		ProductID: product.ID, StoreID: store.ID, Quantity: 5,
	}))
	return product
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /trigger-purchase-order
// ──────────────────────────────────────────────────────────────────────────────

func TestTriggerPurchaseOrder_BajoStockCreaOrdenYResponde200(t *testing.T) {
	f := newAPIFixture()
	product := f.seedLowStockProduct(t)

	resp := f.postJSON(t, "/trigger-purchase-order", fiber.Map{"productId": product.ID})
	require.Equal(t, fiber.StatusOK, resp.StatusCode, "orden creada y no-op comparten el 200")

	var out struct {
		Created         bool  `json:"created"`
		PurchaseOrderID int64 `json:"purchase_order_id"`
		CurrentStock    int   `json:"current_stock"`
		Quantity        int   `json:"quantity"`
	}
	decodeBody(t, resp, &out)
	assert.True(t, out.Created)
	assert.NotZero(t, out.PurchaseOrderID)
	assert.Equal(t, 5, out.CurrentStock)
	assert.Equal(t, 5, out.Quantity, "pide exactamente el faltante hasta el umbral")
}

func TestTriggerPurchaseOrder_StockSuficienteResponde200(t *testing.T) {
	f := newAPIFixture()
	product := f.seedLowStockProduct(t)
	require.NoError(t, f.products.UpdateReorderLevel(product.ID, 3))

	resp := f.postJSON(t, "/trigger-purchase-order", fiber.Map{"productId": product.ID})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out struct {
		Created bool `json:"created"`
	}
	decodeBody(t, resp, &out)
	assert.False(t, out.Created, "con stock suficiente no se crea orden")

	list, err := f.orders.List(20, 0)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestTriggerPurchaseOrder_ProductoInexistenteResponde404(t *testing.T) {
	f := newAPIFixture()

	resp := f.postJSON(t, "/trigger-purchase-order", fiber.Map{"productId": 404})
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var out struct {
		Code string `json:"code"`
	}
	decodeBody(t, resp, &out)
	assert.Equal(t, "NOT_FOUND", out.Code)
}

func TestTriggerPurchaseOrder_SinProductIDResponde400(t *testing.T) {
	f := newAPIFixture()
	resp := f.postJSON(t, "/trigger-purchase-order", fiber.Map{})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /sales-performance-graph
// ──────────────────────────────────────────────────────────────────────────────

func TestSalesPerformanceGraph_DevuelveAgregados(t *testing.T) {
	f := newAPIFixture()
	store := &entity.Store{Name: "Centro", OperatingHours: 8}
	require.NoError(t, f.stores.Create(store))
	resp := f.postJSON(t, "/api/sales/", fiber.Map{
		"total_amount": "150.00",
		"store_id":     store.ID,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = f.get(t, "/sales-performance-graph")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out struct {
		StoreSales []struct {
			StoreName  string `json:"store_name"`
			TotalSales string `json:"total_sales"`
		} `json:"store_sales"`
		ProductSales []any `json:"product_sales"`
	}
	decodeBody(t, resp, &out)
	require.Len(t, out.StoreSales, 1)
	assert.Equal(t, "Centro", out.StoreSales[0].StoreName)
	assert.Equal(t, "150", out.StoreSales[0].TotalSales)
	assert.NotNil(t, out.ProductSales, "sin productos la lista va vacía, no null")
}

func TestSalesPerformanceGraph_FechaInvalidaResponde400(t *testing.T) {
	f := newAPIFixture()
	resp := f.get(t, "/sales-performance-graph?start_date=ayer")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// /api/inventory y errores del dominio
// ──────────────────────────────────────────────────────────────────────────────

func TestTransferencia_StockInsuficienteResponde409(t *testing.T) {
	f := newAPIFixture()
	product := f.seedLowStockProduct(t)
	dest := &entity.Store{Name: "Norte", OperatingHours: 8}
	require.NoError(t, f.stores.Create(dest))

	resp := f.postJSON(t, "/api/inventory/transfers", fiber.Map{
		"product_id":    product.ID,
		"from_store_id": 1,
		"to_store_id":   dest.ID,
		"quantity":      50,
	})
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var out struct {
		Code string `json:"code"`
	}
	decodeBody(t, resp, &out)
	assert.Equal(t, "INSUFFICIENT_STOCK", out.Code)
}

func TestProductoInexistenteResponde404(t *testing.T) {
	f := newAPIFixture()
	resp := f.get(t, "/api/products/999")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
