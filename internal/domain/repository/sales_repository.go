package repository

import (
	"time"

	"github.com/jhoicas/erp-api/internal/domain/entity"
)

// SalesRepository define el puerto de persistencia para Sale.
// start/end acotan DateOfSale de forma inclusiva; nil significa sin cota en ese lado.
type SalesRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id int64) (*entity.Sale, error)
	List(start, end *time.Time, limit, offset int) ([]*entity.Sale, error)
}
