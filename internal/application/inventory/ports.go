package inventory

import (
	"context"

	"github.com/jhoicas/erp-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza atomicidad para las mutaciones de stock.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockLocationRepository,
		movRepo repository.StockMovementRepository,
	) error) error
}
