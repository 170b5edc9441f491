package entity

import "time"

// Store representa una tienda física donde se almacena y vende inventario.
// TotalSales es un contador acumulado; OperatingHours está en el rango 1..24.
type Store struct {
	ID             int64
	Name           string
	Location       string
	ContactNumber  string
	ManagerID      *int64 // staff; NULL si el gerente fue eliminado (SET NULL)
	TotalSales     int
	OperatingHours int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
