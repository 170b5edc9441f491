package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/erp-api/internal/application/dto"
	"github.com/jhoicas/erp-api/internal/domain"
	"github.com/jhoicas/erp-api/internal/domain/entity"
	"github.com/jhoicas/erp-api/internal/domain/repository"
)

// TransferStockUseCase mueve stock de un producto entre tiendas de forma transaccional,
// con bloqueo de fila (SELECT FOR UPDATE) sobre el origen y Commit/Rollback.
type TransferStockUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	storeRepo   repository.StoreRepository
}

// NewTransferStockUseCase construye el caso de uso.
func NewTransferStockUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	storeRepo repository.StoreRepository,
) *TransferStockUseCase {
	return &TransferStockUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		storeRepo:   storeRepo,
	}
}

// TransferStock descuenta quantity del stock del producto en la tienda origen y lo
// suma en la tienda destino. Si el destino no tiene fila (producto, tienda), se crea
// una con la cantidad transferida; siempre queda exactamente una fila por par.
//
// Errores: domain.ErrInvalidInput si quantity <= 0 o origen == destino;
// domain.ErrNotFound si producto o alguna tienda no existen;
// domain.ErrInsufficientStock si el origen no alcanza — en ese caso ninguna fila cambia.
func (uc *TransferStockUseCase) TransferStock(ctx context.Context, in dto.TransferStockRequest) (*dto.StockLocationResponse, error) {
	if in.Quantity <= 0 || in.FromStoreID == in.ToStoreID {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	fromStore, err := uc.storeRepo.GetByID(in.FromStoreID)
	if err != nil {
		return nil, err
	}
	toStore, err := uc.storeRepo.GetByID(in.ToStoreID)
	if err != nil {
		return nil, err
	}
	if fromStore == nil || toStore == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	txID := uuid.New().String()
	var result dto.StockLocationResponse

	err = uc.txRunner.Run(ctx, func(
		stockRepo repository.StockLocationRepository,
		movRepo repository.StockMovementRepository,
	) error {
		// Bloquea la fila origen para evitar el lost update entre workers concurrentes.
		source, err := stockRepo.GetForUpdate(in.ProductID, in.FromStoreID)
		if err != nil {
			return err
		}
		if source.ID == 0 || source.Quantity < in.Quantity {
			return domain.ErrInsufficientStock
		}
		source.Quantity -= in.Quantity
		source.UpdatedAt = now
		if err := stockRepo.Upsert(source); err != nil {
			return err
		}

		dest, err := stockRepo.GetForUpdate(in.ProductID, in.ToStoreID)
		if err != nil {
			return err
		}
		dest.Quantity += in.Quantity
		dest.UpdatedAt = now
		if err := stockRepo.Upsert(dest); err != nil {
			return err
		}

		mov := &entity.StockMovement{
			TransactionID: txID,
			ProductID:     in.ProductID,
			FromStoreID:   in.FromStoreID,
			ToStoreID:     in.ToStoreID,
			Quantity:      in.Quantity,
			CreatedAt:     now,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}

		result = dto.StockLocationResponse{
			ProductID: in.ProductID,
			StoreID:   in.ToStoreID,
			Quantity:  dest.Quantity,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// AdjustStock suma quantity (positiva o negativa) al stock del producto en una tienda.
// Un ajuste que dejaría la cantidad negativa se rechaza sin modificar nada.
func (uc *TransferStockUseCase) AdjustStock(ctx context.Context, in dto.AdjustStockRequest) (*dto.StockLocationResponse, error) {
	if in.Quantity == 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	store, err := uc.storeRepo.GetByID(in.StoreID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	var result dto.StockLocationResponse

	err = uc.txRunner.Run(ctx, func(
		stockRepo repository.StockLocationRepository,
		_ repository.StockMovementRepository,
	) error {
		loc, err := stockRepo.GetForUpdate(in.ProductID, in.StoreID)
		if err != nil {
			return err
		}
		if loc.Quantity+in.Quantity < 0 {
			return domain.ErrInsufficientStock
		}
		loc.Quantity += in.Quantity
		loc.UpdatedAt = now
		if err := stockRepo.Upsert(loc); err != nil {
			return err
		}
		result = dto.StockLocationResponse{
			ProductID: in.ProductID,
			StoreID:   in.StoreID,
			Quantity:  loc.Quantity,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
