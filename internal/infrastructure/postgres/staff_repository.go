package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/erp-api/internal/domain/entity"
	"github.com/jhoicas/erp-api/internal/domain/repository"
)

var _ repository.StaffRepository = (*StaffRepo)(nil)

// StaffRepo persistencia de empleados.
type StaffRepo struct {
	q Querier
}

func NewStaffRepository(q Querier) *StaffRepo {
	return &StaffRepo{q: q}
}

func (r *StaffRepo) Create(staff *entity.Staff) error {
	query := `
		INSERT INTO staff (name, role, salary, department_id, hire_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		staff.Name, staff.Role, staff.Salary, staff.DepartmentID, staff.HireDate,
		staff.CreatedAt, staff.UpdatedAt,
	).Scan(&staff.ID)
	if err != nil {
		return fmt.Errorf("insert staff: %w", err)
	}
	return nil
}

func (r *StaffRepo) GetByID(id int64) (*entity.Staff, error) {
	query := `
		SELECT id, name, role, salary, department_id, hire_date, created_at, updated_at
		FROM staff WHERE id = $1`
	var s entity.Staff
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Name, &s.Role, &s.Salary, &s.DepartmentID, &s.HireDate, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get staff: %w", err)
	}
	return &s, nil
}

func (r *StaffRepo) Update(staff *entity.Staff) error {
	query := `
		UPDATE staff SET name = $2, role = $3, salary = $4, department_id = $5, hire_date = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		staff.ID, staff.Name, staff.Role, staff.Salary, staff.DepartmentID,
		staff.HireDate, staff.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update staff: %w", err)
	}
	return nil
}

func (r *StaffRepo) List(limit, offset int) ([]*entity.Staff, error) {
	query := `
		SELECT id, name, role, salary, department_id, hire_date, created_at, updated_at
		FROM staff ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	defer rows.Close()
	return scanStaff(rows)
}

// ListByDepartment lista los empleados de un departamento.
func (r *StaffRepo) ListByDepartment(departmentID int64) ([]*entity.Staff, error) {
	query := `
		SELECT id, name, role, salary, department_id, hire_date, created_at, updated_at
		FROM staff WHERE department_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, departmentID)
	if err != nil {
		return nil, fmt.Errorf("list staff by department: %w", err)
	}
	defer rows.Close()
	return scanStaff(rows)
}

func (r *StaffRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM staff WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete staff: %w", err)
	}
	return nil
}

func scanStaff(rows pgx.Rows) ([]*entity.Staff, error) {
	var list []*entity.Staff
	for rows.Next() {
		var s entity.Staff
		if err := rows.Scan(&s.ID, &s.Name, &s.Role, &s.Salary, &s.DepartmentID,
			&s.HireDate, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan staff: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
