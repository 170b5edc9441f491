package memory

import (
	"context"

	"github.com/jhoicas/erp-api/internal/application/inventory"
	"github.com/jhoicas/erp-api/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner en memoria: ejecuta el callback directamente contra los repos.
// No hay rollback; los tests que verifican atomicidad deben comprobar el
// estado resultante tras el error.
type TxRunner struct {
	stockRepo *StockLocationRepo
	movRepo   *StockMovementRepo
}

func NewTxRunner(stockRepo *StockLocationRepo, movRepo *StockMovementRepo) *TxRunner {
	return &TxRunner{stockRepo: stockRepo, movRepo: movRepo}
}

func (r *TxRunner) Run(ctx context.Context, fn func(
	stockRepo repository.StockLocationRepository,
	movRepo repository.StockMovementRepository,
) error) error {
	return fn(r.stockRepo, r.movRepo)
}
