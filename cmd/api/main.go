package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	appanalytics "github.com/jhoicas/erp-api/internal/application/analytics"
	"github.com/jhoicas/erp-api/internal/application/inventory"
	"github.com/jhoicas/erp-api/internal/application/procurement"
	"github.com/jhoicas/erp-api/internal/application/usecase"
	"github.com/jhoicas/erp-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/erp-api/internal/interfaces/http"
	"github.com/jhoicas/erp-api/pkg/config"
	"github.com/jhoicas/erp-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	storeRepo := postgres.NewStoreRepository(pool)
	stockRepo := postgres.NewStockLocationRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	orderRepo := postgres.NewPurchaseOrderRepository(pool)
	staffRepo := postgres.NewStaffRepository(pool)
	departmentRepo := postgres.NewDepartmentRepository(pool)
	salesRepo := postgres.NewSalesRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productUC := usecase.NewProductUseCase(productRepo, stockRepo, storeRepo, supplierRepo)
	storeUC := usecase.NewStoreUseCase(storeRepo, stockRepo, productRepo, staffRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo, productRepo, analyticsRepo)
	staffUC := usecase.NewStaffUseCase(staffRepo, departmentRepo, analyticsRepo)
	departmentUC := usecase.NewDepartmentUseCase(departmentRepo, staffRepo)
	orderUC := usecase.NewPurchaseOrderUseCase(orderRepo, productRepo)
	salesUC := usecase.NewSalesUseCase(salesRepo, storeRepo)
	transferUC := inventory.NewTransferStockUseCase(txRunner, productRepo, storeRepo)
	reorderUC := procurement.NewReorderUseCase(productRepo, stockRepo, supplierRepo, orderRepo)
	salesPerfUC := appanalytics.NewSalesPerformanceUseCase(analyticsRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "ERP API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:       productUC,
		StoreUC:         storeUC,
		SupplierUC:      supplierUC,
		StaffUC:         staffUC,
		DepartmentUC:    departmentUC,
		PurchaseOrderUC: orderUC,
		SalesUC:         salesUC,
		TransferStock:   transferUC,
		Reorder:         reorderUC,
		SalesPerf:       salesPerfUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
