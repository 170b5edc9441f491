package usecase

import (
	"time"

	"github.com/jhoicas/erp-api/internal/application/dto"
	"github.com/jhoicas/erp-api/internal/domain"
	"github.com/jhoicas/erp-api/internal/domain/entity"
	"github.com/jhoicas/erp-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// PurchaseOrderUseCase casos de uso de órdenes de compra manuales.
// Las órdenes automáticas las crea procurement.ReorderUseCase.
type PurchaseOrderUseCase struct {
	repo        repository.PurchaseOrderRepository
	productRepo repository.ProductRepository
}

// NewPurchaseOrderUseCase construye el caso de uso.
func NewPurchaseOrderUseCase(repo repository.PurchaseOrderRepository, productRepo repository.ProductRepository) *PurchaseOrderUseCase {
	return &PurchaseOrderUseCase{repo: repo, productRepo: productRepo}
}

// Create crea una orden de compra manual. El producto debe existir; el proveedor
// se toma del producto. Status vacío queda en "Pending"; DeliveryDate nil en NULL.
func (uc *PurchaseOrderUseCase) Create(in dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	if in.TotalAmount.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	status := in.Status
	if status == "" {
		status = entity.OrderStatusPending
	}
	now := time.Now()
	order := &entity.PurchaseOrder{
		ProductID:    in.ProductID,
		SupplierID:   product.SupplierID,
		TotalAmount:  in.TotalAmount,
		OrderDate:    now,
		DeliveryDate: in.DeliveryDate,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(order); err != nil {
		return nil, err
	}
	return toPurchaseOrderResponse(order), nil
}

// GetByID obtiene una orden por ID; (nil, nil) si no existe.
func (uc *PurchaseOrderUseCase) GetByID(id int64) (*dto.PurchaseOrderResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	return toPurchaseOrderResponse(order), nil
}

// GetStatus devuelve el estado actual de la orden.
func (uc *PurchaseOrderUseCase) GetStatus(id int64) (string, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return "", err
	}
	if order == nil {
		return "", domain.ErrNotFound
	}
	return order.Status, nil
}

// Update aplica los campos editables de la orden: monto, fecha de entrega y estado.
func (uc *PurchaseOrderUseCase) Update(id int64, in dto.UpdatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	if in.TotalAmount != nil {
		if in.TotalAmount.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		order.TotalAmount = *in.TotalAmount
	}
	if in.DeliveryDate != nil {
		order.DeliveryDate = in.DeliveryDate
	}
	if in.Status != nil {
		if *in.Status == "" {
			return nil, domain.ErrInvalidInput
		}
		order.Status = *in.Status
	}
	order.UpdatedAt = time.Now()
	if err := uc.repo.Update(order); err != nil {
		return nil, err
	}
	return toPurchaseOrderResponse(order), nil
}

// List lista órdenes con paginación.
func (uc *PurchaseOrderUseCase) List(limit, offset int) (*dto.PurchaseOrderListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PurchaseOrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toPurchaseOrderResponse(o))
	}
	return &dto.PurchaseOrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toPurchaseOrderResponse(o *entity.PurchaseOrder) *dto.PurchaseOrderResponse {
	if o == nil {
		return nil
	}
	return &dto.PurchaseOrderResponse{
		ID:           o.ID,
		ProductID:    o.ProductID,
		SupplierID:   o.SupplierID,
		TotalAmount:  o.TotalAmount,
		OrderDate:    o.OrderDate,
		DeliveryDate: o.DeliveryDate,
		Status:       o.Status,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}
