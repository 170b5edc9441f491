package entity

import "time"

// Staff representa un empleado. Salary es mensual y no negativo.
type Staff struct {
	ID           int64
	Name         string
	Role         string
	Salary       int
	DepartmentID *int64 // NULL si el departamento fue eliminado (SET NULL)
	HireDate     time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
