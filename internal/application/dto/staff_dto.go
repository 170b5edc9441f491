package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateStaffRequest entrada para crear un empleado.
type CreateStaffRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=200"`
	Role         string `json:"role" validate:"max=200"`
	Salary       int    `json:"salary" validate:"min=0"`
	DepartmentID *int64 `json:"department_id"`
}

// UpdateStaffRequest entrada para actualizar un empleado.
// Solo los campos no nil se aplican; el departamento se cambia vía AssignDepartment.
type UpdateStaffRequest struct {
	Name   *string `json:"name"`
	Role   *string `json:"role"`
	Salary *int    `json:"salary"`
}

// HasChanges indica si la petición trae al menos un campo a actualizar.
func (r UpdateStaffRequest) HasChanges() bool {
	return r.Name != nil || r.Role != nil || r.Salary != nil
}

// AssignDepartmentRequest entrada para asignar un empleado a un departamento.
type AssignDepartmentRequest struct {
	DepartmentID int64 `json:"department_id" validate:"required"`
}

// StaffResponse representación HTTP de un empleado.
type StaffResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	Salary       int       `json:"salary"`
	DepartmentID *int64    `json:"department_id,omitempty"`
	HireDate     time.Time `json:"hire_date"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// StaffListResponse listado paginado de empleados.
type StaffListResponse struct {
	Items []StaffResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// StaffPerformanceDTO métricas de ventas de un empleado en la ventana consultada.
// PerformanceIndex normaliza el total por salario; 0 cuando el salario es 0.
type StaffPerformanceDTO struct {
	StaffID           int64           `json:"staff_id"`
	StaffName         string          `json:"staff_name"`
	DateRangeDays     int             `json:"date_range_days"`
	PeriodTotalSales  decimal.Decimal `json:"period_total_sales"`
	AveragePerSale    decimal.Decimal `json:"average_per_sale"`
	TotalTransactions int             `json:"total_transactions"`
	SalesPerDay       decimal.Decimal `json:"sales_per_day"`
	PerformanceIndex  decimal.Decimal `json:"performance_index"`
}
