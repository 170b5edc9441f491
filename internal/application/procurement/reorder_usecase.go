package procurement

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/erp-api/internal/application/dto"
	"github.com/jhoicas/erp-api/internal/domain"
	"github.com/jhoicas/erp-api/internal/domain/entity"
	"github.com/jhoicas/erp-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ReorderUseCase dispara órdenes de compra cuando el stock de un producto
// cae por debajo de su umbral de reorden.
type ReorderUseCase struct {
	productRepo  repository.ProductRepository
	stockRepo    repository.StockLocationRepository
	supplierRepo repository.SupplierRepository
	orderRepo    repository.PurchaseOrderRepository
}

// NewReorderUseCase construye el caso de uso de reorden.
func NewReorderUseCase(
	productRepo repository.ProductRepository,
	stockRepo repository.StockLocationRepository,
	supplierRepo repository.SupplierRepository,
	orderRepo repository.PurchaseOrderRepository,
) *ReorderUseCase {
	return &ReorderUseCase{
		productRepo:  productRepo,
		stockRepo:    stockRepo,
		supplierRepo: supplierRepo,
		orderRepo:    orderRepo,
	}
}

// TriggerPurchaseOrder verifica el stock total del producto contra su umbral de
// reorden y, si está por debajo, crea una orden de compra "Pending" al proveedor
// por la cantidad faltante (umbral - stock) al precio unitario vigente.
//
// Con stock suficiente devuelve un resultado informativo con Created=false y sin
// persistir nada. No hay guardia de idempotencia: dos llamadas seguidas sobre el
// mismo producto bajo de stock crean dos órdenes.
//
// Errores: domain.ErrNotFound si el producto no existe; domain.ErrSupplierNotFound
// si el producto no tiene proveedor asignado o el proveedor ya no existe.
func (uc *ReorderUseCase) TriggerPurchaseOrder(ctx context.Context, productID int64) (*dto.ReorderResultDTO, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, fmt.Errorf("consultar producto %d: %w", productID, err)
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	currentStock, err := uc.stockRepo.SumByProduct(productID)
	if err != nil {
		return nil, fmt.Errorf("calcular stock del producto %d: %w", productID, err)
	}

	if currentStock >= product.ReorderLevel {
		return &dto.ReorderResultDTO{
			Created:      false,
			ProductID:    productID,
			CurrentStock: currentStock,
			ReorderLevel: product.ReorderLevel,
			Message: fmt.Sprintf(
				"Stock level (%d) for product ID %d is sufficient. No purchase order needed.",
				currentStock, productID),
		}, nil
	}

	if product.SupplierID == nil {
		return nil, domain.ErrSupplierNotFound
	}
	supplier, err := uc.supplierRepo.GetByID(*product.SupplierID)
	if err != nil {
		return nil, fmt.Errorf("consultar proveedor %d: %w", *product.SupplierID, err)
	}
	if supplier == nil {
		return nil, domain.ErrSupplierNotFound
	}

	// Cantidad a reponer: lo que falta para alcanzar el umbral.
	// El clamp a cero es redundante tras la rama anterior, pero mantiene el invariante.
	reorderQty := product.ReorderLevel - currentStock
	if reorderQty < 0 {
		reorderQty = 0
	}
	totalAmount := decimal.NewFromInt(int64(reorderQty)).Mul(product.Price)

	now := time.Now()
	order := &entity.PurchaseOrder{
		ProductID:   productID,
		SupplierID:  &supplier.ID,
		TotalAmount: totalAmount,
		OrderDate:   now,
		// DeliveryDate queda en NULL: se conoce al confirmar con el proveedor.
		Status:    entity.OrderStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("crear orden de compra: %w", err)
	}

	return &dto.ReorderResultDTO{
		Created:         true,
		ProductID:       productID,
		PurchaseOrderID: order.ID,
		CurrentStock:    currentStock,
		ReorderLevel:    product.ReorderLevel,
		Quantity:        reorderQty,
		TotalAmount:     totalAmount,
		Message: fmt.Sprintf(
			"Purchase order %d created for product ID %d with quantity %d.",
			order.ID, productID, reorderQty),
	}, nil
}
