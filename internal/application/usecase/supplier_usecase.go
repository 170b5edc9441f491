package usecase

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

// SupplierUseCase casos de uso CRUD y desempeño de proveedores.
type SupplierUseCase struct {
	repo          repository.SupplierRepository
	productRepo   repository.ProductRepository
	analyticsRepo repository.AnalyticsRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(
	repo repository.SupplierRepository,
	productRepo repository.ProductRepository,
	analyticsRepo repository.AnalyticsRepository,
) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, productRepo: productRepo, analyticsRepo: analyticsRepo}
}

// Create crea un nuevo proveedor.
func (uc *SupplierUseCase) Create(in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	supplier := &entity.Supplier{
		Name:           in.Name,
		ContactDetails: in.ContactDetails,
		Location:       in.Location,
		ContractTerms:  in.ContractTerms,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// GetByID obtiene un proveedor por ID; (nil, nil) si no existe.
func (uc *SupplierUseCase) GetByID(id int64) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, nil
	}
	return toSupplierResponse(supplier), nil
}

// Update aplica los campos editables del proveedor.
func (uc *SupplierUseCase) Update(id int64, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		supplier.Name = *in.Name
	}
	if in.ContactDetails != nil {
		supplier.ContactDetails = *in.ContactDetails
	}
	if in.Location != nil {
		supplier.Location = *in.Location
	}
	if in.ContractTerms != nil {
		supplier.ContractTerms = *in.ContractTerms
	}
	supplier.UpdatedAt = time.Now()
	if err := uc.repo.Update(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// Products devuelve los productos asociados al proveedor.
func (uc *SupplierUseCase) Products(id int64) ([]dto.ProductResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	products, err := uc.productRepo.ListBySupplier(id)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// ViewPerformance analiza las órdenes "Delivered" de productos del proveedor en los
// últimos days días: conteo, monto total y valor promedio por orden (0 sin órdenes).
func (uc *SupplierUseCase) ViewPerformance(ctx context.Context, id int64, days int) (*dto.SupplierPerformanceDTO, error) {
	if days <= 0 {
		days = 30
	}
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}

	end := time.Now()
	start := end.AddDate(0, 0, -days)
	stats, err := uc.analyticsRepo.SupplierDelivered(ctx, id, start, end)
	if err != nil {
		return nil, fmt.Errorf("desempeño del proveedor %d: %w", id, err)
	}

	avg := decimal.Zero
	if stats.OrderCount > 0 {
		avg = stats.TotalAmount.Div(decimal.NewFromInt(int64(stats.OrderCount))).Round(2)
	}
	return &dto.SupplierPerformanceDTO{
		SupplierID:           id,
		DateRangeDays:        days,
		TotalDeliveredOrders: stats.OrderCount,
		TotalDeliveredAmount: stats.TotalAmount,
		AverageOrderValue:    avg,
	}, nil
}

// List lista proveedores con paginación.
func (uc *SupplierUseCase) List(limit, offset int) (*dto.SupplierListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSupplierResponse(s))
	}
	return &dto.SupplierListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un proveedor; sus productos quedan sin proveedor (SET NULL).
func (uc *SupplierUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	if s == nil {
		return nil
	}
	return &dto.SupplierResponse{
		ID:             s.ID,
		Name:           s.Name,
		ContactDetails: s.ContactDetails,
		Location:       s.Location,
		ContractTerms:  s.ContractTerms,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}
