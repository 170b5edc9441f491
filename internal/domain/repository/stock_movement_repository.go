package repository

import "github.com/jhoicas/erp-api/internal/domain/entity"

// StockMovementRepository define el puerto para el registro de auditoría de transferencias.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	ListByProduct(productID int64) ([]*entity.StockMovement, error)
}
