package usecase

import (
	"strings"
	"time"

	"github.com/jhoicas/erp-api/internal/application/dto"
	"github.com/jhoicas/erp-api/internal/domain"
	"github.com/jhoicas/erp-api/internal/domain/entity"
	"github.com/jhoicas/erp-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// StoreUseCase casos de uso CRUD, consultas y desempeño de tiendas.
type StoreUseCase struct {
	repo        repository.StoreRepository
	stockRepo   repository.StockLocationRepository
	productRepo repository.ProductRepository
	staffRepo   repository.StaffRepository
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(
	repo repository.StoreRepository,
	stockRepo repository.StockLocationRepository,
	productRepo repository.ProductRepository,
	staffRepo repository.StaffRepository,
) *StoreUseCase {
	return &StoreUseCase{repo: repo, stockRepo: stockRepo, productRepo: productRepo, staffRepo: staffRepo}
}

// validContactNumber acepta dígitos con un "+" inicial opcional (hasta 15 caracteres).
func validContactNumber(s string) bool {
	if s == "" || len(s) > 15 {
		return false
	}
	rest := strings.TrimPrefix(s, "+")
	if rest == "" {
		return false
	}
	for _, r := range rest {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Create crea una nueva tienda. OperatingHours debe estar en 1..24;
// el gerente, si viene, debe existir.
func (uc *StoreUseCase) Create(in dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.OperatingHours < 1 || in.OperatingHours > 24 {
		return nil, domain.ErrInvalidInput
	}
	if in.ContactNumber != "" && !validContactNumber(in.ContactNumber) {
		return nil, domain.ErrInvalidInput
	}
	if in.ManagerID != nil {
		manager, err := uc.staffRepo.GetByID(*in.ManagerID)
		if err != nil {
			return nil, err
		}
		if manager == nil {
			return nil, domain.ErrNotFound
		}
	}
	now := time.Now()
	store := &entity.Store{
		Name:           in.Name,
		Location:       in.Location,
		ContactNumber:  in.ContactNumber,
		ManagerID:      in.ManagerID,
		TotalSales:     0,
		OperatingHours: in.OperatingHours,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(store); err != nil {
		return nil, err
	}
	return toStoreResponse(store), nil
}

// GetByID obtiene una tienda por ID; (nil, nil) si no existe.
func (uc *StoreUseCase) GetByID(id int64) (*dto.StoreResponse, error) {
	store, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, nil
	}
	return toStoreResponse(store), nil
}

// Update aplica los campos editables de la tienda. Una petición sin campos se
// rechaza; el número de contacto y las horas de operación se validan antes de asignar.
func (uc *StoreUseCase) Update(id int64, in dto.UpdateStoreRequest) (*dto.StoreResponse, error) {
	if !in.HasChanges() {
		return nil, domain.ErrInvalidInput
	}
	store, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		store.Name = *in.Name
	}
	if in.Location != nil {
		store.Location = *in.Location
	}
	if in.ContactNumber != nil {
		if !validContactNumber(*in.ContactNumber) {
			return nil, domain.ErrInvalidInput
		}
		store.ContactNumber = *in.ContactNumber
	}
	if in.OperatingHours != nil {
		if *in.OperatingHours < 1 || *in.OperatingHours > 24 {
			return nil, domain.ErrInvalidInput
		}
		store.OperatingHours = *in.OperatingHours
	}
	if in.ManagerID != nil {
		manager, err := uc.staffRepo.GetByID(*in.ManagerID)
		if err != nil {
			return nil, err
		}
		if manager == nil {
			return nil, domain.ErrNotFound
		}
		store.ManagerID = in.ManagerID
	}
	store.UpdatedAt = time.Now()
	if err := uc.repo.Update(store); err != nil {
		return nil, err
	}
	return toStoreResponse(store), nil
}

// ViewPerformance devuelve el contador de ventas y el promedio por hora de operación.
// Con horas en cero el promedio es 0, nunca división por cero.
func (uc *StoreUseCase) ViewPerformance(id int64) (*dto.StorePerformanceDTO, error) {
	store, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	avg := decimal.Zero
	if store.OperatingHours > 0 {
		avg = decimal.NewFromInt(int64(store.TotalSales)).
			Div(decimal.NewFromInt(int64(store.OperatingHours))).Round(2)
	}
	return &dto.StorePerformanceDTO{
		StoreID:             store.ID,
		TotalSales:          store.TotalSales,
		AverageSalesPerHour: avg,
	}, nil
}

// GetProducts devuelve los productos almacenados en la tienda con su cantidad.
func (uc *StoreUseCase) GetProducts(id int64) ([]dto.StoreProductDTO, error) {
	store, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	locations, err := uc.stockRepo.ListByStore(id)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StoreProductDTO, 0, len(locations))
	for _, loc := range locations {
		product, err := uc.productRepo.GetByID(loc.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			continue
		}
		out = append(out, dto.StoreProductDTO{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    loc.Quantity,
		})
	}
	return out, nil
}

// List lista tiendas con paginación.
func (uc *StoreUseCase) List(limit, offset int) (*dto.StoreListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StoreResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toStoreResponse(s))
	}
	return &dto.StoreListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una tienda; stock y ventas asociadas caen en cascada (esquema).
func (uc *StoreUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

func toStoreResponse(s *entity.Store) *dto.StoreResponse {
	if s == nil {
		return nil
	}
	return &dto.StoreResponse{
		ID:             s.ID,
		Name:           s.Name,
		Location:       s.Location,
		ContactNumber:  s.ContactNumber,
		ManagerID:      s.ManagerID,
		TotalSales:     s.TotalSales,
		OperatingHours: s.OperatingHours,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}
