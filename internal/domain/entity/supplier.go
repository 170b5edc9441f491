package entity

import "time"

// Supplier representa un proveedor de productos.
// Al eliminarlo, los productos asociados quedan con SupplierID en NULL (soft detach).
type Supplier struct {
	ID             int64
	Name           string
	ContactDetails string
	Location       string
	ContractTerms  string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
