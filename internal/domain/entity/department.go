package entity

import "time"

// Department representa un departamento administrativo con presupuesto asignado.
type Department struct {
	ID        int64
	Name      string
	ManagerID *int64 // staff; NULL si el gerente fue eliminado (SET NULL)
	Budget    int
	CreatedAt time.Time
	UpdatedAt time.Time
}
