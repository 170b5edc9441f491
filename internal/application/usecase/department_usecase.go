package usecase

import (
	"time"

	"github.com/jhoicas/erp-api/internal/application/dto"
	"github.com/jhoicas/erp-api/internal/domain"
	"github.com/jhoicas/erp-api/internal/domain/entity"
	"github.com/jhoicas/erp-api/internal/domain/repository"
)

// DepartmentUseCase casos de uso de departamentos y su presupuesto.
type DepartmentUseCase struct {
	repo      repository.DepartmentRepository
	staffRepo repository.StaffRepository
}

// NewDepartmentUseCase construye el caso de uso.
func NewDepartmentUseCase(repo repository.DepartmentRepository, staffRepo repository.StaffRepository) *DepartmentUseCase {
	return &DepartmentUseCase{repo: repo, staffRepo: staffRepo}
}

// Create crea un nuevo departamento. Budget no negativo.
func (uc *DepartmentUseCase) Create(in dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error) {
	if in.Name == "" || in.Budget < 0 {
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
	department := &entity.Department{
		Name:      in.Name,
		ManagerID: in.ManagerID,
		Budget:    in.Budget,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(department); err != nil {
		return nil, err
	}
	return toDepartmentResponse(department), nil
}

// GetByID obtiene un departamento por ID; (nil, nil) si no existe.
func (uc *DepartmentUseCase) GetByID(id int64) (*dto.DepartmentResponse, error) {
	department, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, nil
	}
	return toDepartmentResponse(department), nil
}

// SetBudget fija el presupuesto; rechaza valores negativos.
func (uc *DepartmentUseCase) SetBudget(id int64, budget int) (*dto.DepartmentResponse, error) {
	if budget < 0 {
		return nil, domain.ErrInvalidInput
	}
	department, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, domain.ErrNotFound
	}
	department.Budget = budget
	department.UpdatedAt = time.Now()
	if err := uc.repo.Update(department); err != nil {
		return nil, err
	}
	return toDepartmentResponse(department), nil
}

// Staff devuelve los empleados del departamento.
func (uc *DepartmentUseCase) Staff(id int64) ([]dto.StaffResponse, error) {
	department, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.staffRepo.ListByDepartment(id)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StaffResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *toStaffResponse(s))
	}
	return out, nil
}

// List lista departamentos con paginación.
func (uc *DepartmentUseCase) List(limit, offset int) (*dto.DepartmentListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DepartmentResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toDepartmentResponse(d))
	}
	return &dto.DepartmentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toDepartmentResponse(d *entity.Department) *dto.DepartmentResponse {
	if d == nil {
		return nil
	}
	return &dto.DepartmentResponse{
		ID:        d.ID,
		Name:      d.Name,
		ManagerID: d.ManagerID,
		Budget:    d.Budget,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
