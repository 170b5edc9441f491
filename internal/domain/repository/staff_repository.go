package repository

import "github.com/jhoicas/erp-api/internal/domain/entity"

// StaffRepository define el puerto de persistencia para Staff.
type StaffRepository interface {
	Create(staff *entity.Staff) error
	GetByID(id int64) (*entity.Staff, error)
	Update(staff *entity.Staff) error
	List(limit, offset int) ([]*entity.Staff, error)
	ListByDepartment(departmentID int64) ([]*entity.Staff, error)
	Delete(id int64) error
}
