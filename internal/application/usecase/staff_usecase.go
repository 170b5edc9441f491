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

// StaffUseCase casos de uso CRUD y desempeño de empleados.
type StaffUseCase struct {
	repo           repository.StaffRepository
	departmentRepo repository.DepartmentRepository
	analyticsRepo  repository.AnalyticsRepository
}

// NewStaffUseCase construye el caso de uso.
func NewStaffUseCase(
	repo repository.StaffRepository,
	departmentRepo repository.DepartmentRepository,
	analyticsRepo repository.AnalyticsRepository,
) *StaffUseCase {
	return &StaffUseCase{repo: repo, departmentRepo: departmentRepo, analyticsRepo: analyticsRepo}
}

// Create crea un nuevo empleado. Salary no negativo; el departamento, si viene, debe existir.
func (uc *StaffUseCase) Create(in dto.CreateStaffRequest) (*dto.StaffResponse, error) {
	if in.Name == "" || in.Salary < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.DepartmentID != nil {
		department, err := uc.departmentRepo.GetByID(*in.DepartmentID)
		if err != nil {
			return nil, err
		}
		if department == nil {
			return nil, domain.ErrNotFound
		}
	}
	now := time.Now()
	staff := &entity.Staff{
		Name:         in.Name,
		Role:         in.Role,
		Salary:       in.Salary,
		DepartmentID: in.DepartmentID,
		HireDate:     now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(staff); err != nil {
		return nil, err
	}
	return toStaffResponse(staff), nil
}

// GetByID obtiene un empleado por ID; (nil, nil) si no existe.
func (uc *StaffUseCase) GetByID(id int64) (*dto.StaffResponse, error) {
	staff, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, nil
	}
	return toStaffResponse(staff), nil
}

// Update aplica los campos editables del empleado. Una petición sin campos se rechaza;
// Salary negativo se rechaza antes de asignar.
func (uc *StaffUseCase) Update(id int64, in dto.UpdateStaffRequest) (*dto.StaffResponse, error) {
	if !in.HasChanges() {
		return nil, domain.ErrInvalidInput
	}
	staff, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		staff.Name = *in.Name
	}
	if in.Role != nil {
		staff.Role = *in.Role
	}
	if in.Salary != nil {
		if *in.Salary < 0 {
			return nil, domain.ErrInvalidInput
		}
		staff.Salary = *in.Salary
	}
	staff.UpdatedAt = time.Now()
	if err := uc.repo.Update(staff); err != nil {
		return nil, err
	}
	return toStaffResponse(staff), nil
}

// AssignDepartment asigna el empleado a un departamento existente.
func (uc *StaffUseCase) AssignDepartment(id, departmentID int64) (*dto.StaffResponse, error) {
	staff, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, domain.ErrNotFound
	}
	department, err := uc.departmentRepo.GetByID(departmentID)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, domain.ErrNotFound
	}
	staff.DepartmentID = &department.ID
	staff.UpdatedAt = time.Now()
	if err := uc.repo.Update(staff); err != nil {
		return nil, err
	}
	return toStaffResponse(staff), nil
}

// ViewPerformance analiza las ventas del empleado en los últimos days días:
// total, promedio por transacción, conteo, ventas/día y un índice normalizado
// por salario. Salario en cero produce índice 0, nunca división por cero.
func (uc *StaffUseCase) ViewPerformance(ctx context.Context, id int64, days int) (*dto.StaffPerformanceDTO, error) {
	if days <= 0 {
		days = 30
	}
	staff, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, domain.ErrNotFound
	}

	end := time.Now()
	start := end.AddDate(0, 0, -days)
	stats, err := uc.analyticsRepo.StaffSales(ctx, id, start, end)
	if err != nil {
		return nil, fmt.Errorf("desempeño del empleado %d: %w", id, err)
	}

	salesPerDay := stats.TotalSales.Div(decimal.NewFromInt(int64(days))).Round(2)
	perfIndex := decimal.Zero
	if staff.Salary > 0 {
		perfIndex = stats.TotalSales.Div(decimal.NewFromInt(int64(staff.Salary))).Round(4)
	}
	return &dto.StaffPerformanceDTO{
		StaffID:           staff.ID,
		StaffName:         staff.Name,
		DateRangeDays:     days,
		PeriodTotalSales:  stats.TotalSales,
		AveragePerSale:    stats.AveragePerSale,
		TotalTransactions: stats.TransactionCount,
		SalesPerDay:       salesPerDay,
		PerformanceIndex:  perfIndex,
	}, nil
}

// List lista empleados con paginación.
func (uc *StaffUseCase) List(limit, offset int) (*dto.StaffListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StaffResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toStaffResponse(s))
	}
	return &dto.StaffListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un empleado; las ventas y tiendas que lo referencian quedan en NULL.
func (uc *StaffUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

func toStaffResponse(s *entity.Staff) *dto.StaffResponse {
	if s == nil {
		return nil
	}
	return &dto.StaffResponse{
		ID:           s.ID,
		Name:         s.Name,
		Role:         s.Role,
		Salary:       s.Salary,
		DepartmentID: s.DepartmentID,
		HireDate:     s.HireDate,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
