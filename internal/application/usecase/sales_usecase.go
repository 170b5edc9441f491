package usecase

import (
	"time"

	"github.com/jhoicas/erp-api/internal/application/dto"
	"github.com/jhoicas/erp-api/internal/domain"
	"github.com/jhoicas/erp-api/internal/domain/entity"
	"github.com/jhoicas/erp-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// SalesUseCase registro y consulta de ventas.
type SalesUseCase struct {
	repo      repository.SalesRepository
	storeRepo repository.StoreRepository
}

// NewSalesUseCase construye el caso de uso.
func NewSalesUseCase(repo repository.SalesRepository, storeRepo repository.StoreRepository) *SalesUseCase {
	return &SalesUseCase{repo: repo, storeRepo: storeRepo}
}

// Create registra una venta en una tienda existente y suma 1 al contador
// de ventas de la tienda.
func (uc *SalesUseCase) Create(in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if in.TotalAmount.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	store, err := uc.storeRepo.GetByID(in.StoreID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	sale := &entity.Sale{
		PaymentMethod: in.PaymentMethod,
		TotalAmount:   in.TotalAmount,
		StoreID:       in.StoreID,
		ProductID:     in.ProductID,
		StaffID:       in.StaffID,
		DateOfSale:    now,
		CreatedAt:     now,
	}
	if err := uc.repo.Create(sale); err != nil {
		return nil, err
	}
	if err := uc.storeRepo.IncrementTotalSales(in.StoreID); err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// GetByID obtiene una venta por ID; (nil, nil) si no existe.
func (uc *SalesUseCase) GetByID(id int64) (*dto.SaleResponse, error) {
	sale, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, nil
	}
	return toSaleResponse(sale), nil
}

// List lista ventas en la ventana [start, end] (inclusiva, nil = sin cota) con paginación.
func (uc *SalesUseCase) List(start, end *time.Time, limit, offset int) (*dto.SaleListResponse, error) {
	list, err := uc.repo.List(start, end, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSaleResponse(s))
	}
	return &dto.SaleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	return &dto.SaleResponse{
		ID:            s.ID,
		PaymentMethod: s.PaymentMethod,
		TotalAmount:   s.TotalAmount,
		StoreID:       s.StoreID,
		ProductID:     s.ProductID,
		StaffID:       s.StaffID,
		DateOfSale:    s.DateOfSale,
	}
}
