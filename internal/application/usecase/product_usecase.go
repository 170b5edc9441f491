package usecase

import (
	"time"

	"github.com/jhoicas/erp-api/internal/application/dto"
	"github.com/jhoicas/erp-api/internal/domain"
	"github.com/jhoicas/erp-api/internal/domain/entity"
	"github.com/jhoicas/erp-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ProductUseCase casos de uso CRUD y consultas de producto.
// El stock no se edita aquí: solo cambia vía transferencias y ajustes de inventario.
type ProductUseCase struct {
	repo         repository.ProductRepository
	stockRepo    repository.StockLocationRepository
	storeRepo    repository.StoreRepository
	supplierRepo repository.SupplierRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	stockRepo repository.StockLocationRepository,
	storeRepo repository.StoreRepository,
	supplierRepo repository.SupplierRepository,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, stockRepo: stockRepo, storeRepo: storeRepo, supplierRepo: supplierRepo}
}

// Create crea un nuevo producto. El proveedor, si viene, debe existir.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Price.LessThan(decimal.Zero) || in.ReorderLevel < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.SupplierID != nil {
		supplier, err := uc.supplierRepo.GetByID(*in.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, domain.ErrNotFound
		}
	}
	now := time.Now()
	product := &entity.Product{
		Name:         in.Name,
		Category:     in.Category,
		Price:        in.Price,
		ReorderLevel: in.ReorderLevel,
		SupplierID:   in.SupplierID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID; (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza los campos editables de un producto.
func (uc *ProductUseCase) Update(id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.SupplierID != nil {
		supplier, err := uc.supplierRepo.GetByID(*in.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, domain.ErrNotFound
		}
		product.SupplierID = in.SupplierID
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// EditReorderLevel cambia el umbral de reorden; rechaza valores negativos.
func (uc *ProductUseCase) EditReorderLevel(id int64, level int) error {
	if level < 0 {
		return domain.ErrInvalidInput
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.UpdateReorderLevel(id, level)
}

// GetStockLevel devuelve el stock total del producto sumando todas las tiendas.
func (uc *ProductUseCase) GetStockLevel(id int64) (*dto.ProductStockResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	total, err := uc.stockRepo.SumByProduct(id)
	if err != nil {
		return nil, err
	}
	return &dto.ProductStockResponse{ProductID: id, StockLevel: total}, nil
}

// GetStores devuelve las tiendas que almacenan el producto, con su cantidad.
func (uc *ProductUseCase) GetStores(id int64) ([]dto.ProductStoreDTO, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	locations, err := uc.stockRepo.ListByProduct(id)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductStoreDTO, 0, len(locations))
	for _, loc := range locations {
		store, err := uc.storeRepo.GetByID(loc.StoreID)
		if err != nil {
			return nil, err
		}
		if store == nil {
			continue
		}
		out = append(out, dto.ProductStoreDTO{
			StoreID:   store.ID,
			StoreName: store.Name,
			Location:  store.Location,
			Quantity:  loc.Quantity,
		})
	}
	return out, nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un producto; sus filas de stock y ventas asociadas siguen las
// reglas ON DELETE del esquema.
func (uc *ProductUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:               p.ID,
		Name:             p.Name,
		Category:         p.Category,
		Price:            p.Price,
		ReorderLevel:     p.ReorderLevel,
		LastPurchaseDate: p.LastPurchaseDate,
		SupplierID:       p.SupplierID,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
