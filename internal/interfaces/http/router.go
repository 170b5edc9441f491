package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/erp-api/internal/application/analytics"
	"github.com/jhoicas/erp-api/internal/application/inventory"
	"github.com/jhoicas/erp-api/internal/application/procurement"
	"github.com/jhoicas/erp-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC       *usecase.ProductUseCase
	StoreUC         *usecase.StoreUseCase
	SupplierUC      *usecase.SupplierUseCase
	StaffUC         *usecase.StaffUseCase
	DepartmentUC    *usecase.DepartmentUseCase
	PurchaseOrderUC *usecase.PurchaseOrderUseCase
	SalesUC         *usecase.SalesUseCase
	TransferStock   *inventory.TransferStockUseCase
	Reorder         *procurement.ReorderUseCase
	SalesPerf       *analytics.SalesPerformanceUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Operaciones de negocio en la raíz (rutas históricas del sistema)
	procurementHandler := NewProcurementHandler(deps.Reorder)
	app.Post("/trigger-purchase-order", procurementHandler.TriggerPurchaseOrder)

	analyticsHandler := NewAnalyticsHandler(deps.SalesPerf)
	app.Get("/sales-performance-graph", analyticsHandler.SalesPerformance)

	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Put("/:id/reorder-level", productHandler.EditReorderLevel)
	products.Get("/:id/stock-level", productHandler.GetStockLevel)
	products.Get("/:id/stores", productHandler.GetStores)

	// Stores
	stores := api.Group("/stores")
	storeHandler := NewStoreHandler(deps.StoreUC)
	stores.Post("/", storeHandler.Create)
	stores.Get("/", storeHandler.List)
	stores.Get("/:id", storeHandler.GetByID)
	stores.Put("/:id", storeHandler.Update)
	stores.Delete("/:id", storeHandler.Delete)
	stores.Get("/:id/performance", storeHandler.ViewPerformance)
	stores.Get("/:id/products", storeHandler.GetProducts)

	// Suppliers
	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)
	suppliers.Get("/:id/products", supplierHandler.Products)
	suppliers.Get("/:id/performance", supplierHandler.ViewPerformance)

	// Staff
	staff := api.Group("/staff")
	staffHandler := NewStaffHandler(deps.StaffUC)
	staff.Post("/", staffHandler.Create)
	staff.Get("/", staffHandler.List)
	staff.Get("/:id", staffHandler.GetByID)
	staff.Put("/:id", staffHandler.Update)
	staff.Delete("/:id", staffHandler.Delete)
	staff.Put("/:id/department", staffHandler.AssignDepartment)
	staff.Get("/:id/performance", staffHandler.ViewPerformance)

	// Departments
	departments := api.Group("/departments")
	departmentHandler := NewDepartmentHandler(deps.DepartmentUC)
	departments.Post("/", departmentHandler.Create)
	departments.Get("/", departmentHandler.List)
	departments.Get("/:id", departmentHandler.GetByID)
	departments.Put("/:id/budget", departmentHandler.SetBudget)
	departments.Get("/:id/staff", departmentHandler.Staff)

	// Purchase orders
	orders := api.Group("/purchase-orders")
	orderHandler := NewPurchaseOrderHandler(deps.PurchaseOrderUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id", orderHandler.Update)
	orders.Get("/:id/status", orderHandler.GetStatus)

	// Sales
	sales := api.Group("/sales")
	salesHandler := NewSalesHandler(deps.SalesUC)
	sales.Post("/", salesHandler.Create)
	sales.Get("/", salesHandler.List)
	sales.Get("/:id", salesHandler.GetByID)

	// Inventory (transferencias y ajustes de stock)
	inv := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.TransferStock)
	inv.Post("/transfers", inventoryHandler.TransferStock)
	inv.Post("/adjustments", inventoryHandler.AdjustStock)

	// Analytics
	analyticsGroup := api.Group("/analytics")
	analyticsGroup.Get("/sales-performance", analyticsHandler.SalesPerformance)
	analyticsGroup.Get("/sales-by-day", analyticsHandler.SalesByDay)
	analyticsGroup.Get("/total-sales", analyticsHandler.TotalSales)
}
