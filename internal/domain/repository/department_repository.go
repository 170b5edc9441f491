package repository

import "github.com/jhoicas/erp-api/internal/domain/entity"

// DepartmentRepository define el puerto de persistencia para Department.
type DepartmentRepository interface {
	Create(department *entity.Department) error
	GetByID(id int64) (*entity.Department, error)
	Update(department *entity.Department) error
	List(limit, offset int) ([]*entity.Department, error)
}
