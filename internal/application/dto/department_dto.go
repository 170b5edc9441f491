package dto

import "time"

// CreateDepartmentRequest entrada para crear un departamento.
type CreateDepartmentRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=200"`
	ManagerID *int64 `json:"manager_id"`
	Budget    int    `json:"budget" validate:"min=0"`
}

// SetBudgetRequest entrada para fijar el presupuesto de un departamento.
type SetBudgetRequest struct {
	Budget int `json:"budget" validate:"min=0"`
}

// DepartmentResponse representación HTTP de un departamento.
type DepartmentResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	ManagerID *int64    `json:"manager_id,omitempty"`
	Budget    int       `json:"budget"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DepartmentListResponse listado paginado de departamentos.
type DepartmentListResponse struct {
	Items []DepartmentResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
