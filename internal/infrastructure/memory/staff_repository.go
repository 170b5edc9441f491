package memory

import (
	"sync"

	"github.com/jhoicas/erp-api/internal/domain/entity"
	"github.com/jhoicas/erp-api/internal/domain/repository"
)

var _ repository.StaffRepository = (*StaffRepo)(nil)

// StaffRepo repositorio de empleados en memoria.
type StaffRepo struct {
	mu    sync.RWMutex
	seq   int64
	items map[int64]*entity.Staff
}

func NewStaffRepository() *StaffRepo {
	return &StaffRepo{items: make(map[int64]*entity.Staff)}
}

func (r *StaffRepo) Create(staff *entity.Staff) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	staff.ID = r.seq
	cp := *staff
	r.items[staff.ID] = &cp
	return nil
}

func (r *StaffRepo) GetByID(id int64) (*entity.Staff, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *StaffRepo) Update(staff *entity.Staff) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[staff.ID]; !ok {
		return nil
	}
	cp := *staff
	r.items[staff.ID] = &cp
	return nil
}

func (r *StaffRepo) List(limit, offset int) ([]*entity.Staff, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return paginate(sortedByID(r.items), limit, offset), nil
}

func (r *StaffRepo) ListByDepartment(departmentID int64) ([]*entity.Staff, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.Staff
	for _, s := range sortedByID(r.items) {
		if s.DepartmentID != nil && *s.DepartmentID == departmentID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *StaffRepo) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}
