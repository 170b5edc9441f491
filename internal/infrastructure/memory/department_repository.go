package memory

import (
	"sync"

	"github.com/jhoicas/erp-api/internal/domain/entity"
	"github.com/jhoicas/erp-api/internal/domain/repository"
)

var _ repository.DepartmentRepository = (*DepartmentRepo)(nil)

// DepartmentRepo repositorio de departamentos en memoria.
type DepartmentRepo struct {
	mu    sync.RWMutex
	seq   int64
	items map[int64]*entity.Department
}

func NewDepartmentRepository() *DepartmentRepo {
	return &DepartmentRepo{items: make(map[int64]*entity.Department)}
}

func (r *DepartmentRepo) Create(department *entity.Department) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	department.ID = r.seq
	cp := *department
	r.items[department.ID] = &cp
	return nil
}

func (r *DepartmentRepo) GetByID(id int64) (*entity.Department, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (r *DepartmentRepo) Update(department *entity.Department) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[department.ID]; !ok {
		return nil
	}
	cp := *department
	r.items[department.ID] = &cp
	return nil
}

func (r *DepartmentRepo) List(limit, offset int) ([]*entity.Department, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return paginate(sortedByID(r.items), limit, offset), nil
}
