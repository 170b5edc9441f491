package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/erp-api/internal/domain/entity"
	"github.com/jhoicas/erp-api/internal/domain/repository"
)

var _ repository.StockLocationRepository = (*StockLocationRepo)(nil)

// StockLocationRepo maneja las filas de stock por (producto, tienda).
// La tabla tiene UNIQUE (product_id, store_id): una fila por combinación.
type StockLocationRepo struct {
	q Querier
}

func NewStockLocationRepository(q Querier) *StockLocationRepo {
	return &StockLocationRepo{q: q}
}

// Get obtiene la fila de stock para (producto, tienda). Si no existe devuelve
// una fila en cero con ID = 0: el caso "sin stock registrado" se trata igual
// que cantidad cero.
func (r *StockLocationRepo) Get(productID, storeID int64) (*entity.StockLocation, error) {
	return r.get(productID, storeID, false)
}

// GetForUpdate igual que Get pero con SELECT ... FOR UPDATE. Debe llamarse
// dentro de una transacción; el lock de fila serializa transferencias y
// ajustes concurrentes sobre la misma ubicación.
func (r *StockLocationRepo) GetForUpdate(productID, storeID int64) (*entity.StockLocation, error) {
	return r.get(productID, storeID, true)
}

func (r *StockLocationRepo) get(productID, storeID int64, forUpdate bool) (*entity.StockLocation, error) {
	query := `
		SELECT id, product_id, store_id, quantity, created_at, updated_at
		FROM stock_locations WHERE product_id = $1 AND store_id = $2`
	if forUpdate {
		query += " FOR UPDATE"
	}
	var sl entity.StockLocation
	err := r.q.QueryRow(context.Background(), query, productID, storeID).Scan(
		&sl.ID, &sl.ProductID, &sl.StoreID, &sl.Quantity, &sl.CreatedAt, &sl.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.StockLocation{ProductID: productID, StoreID: storeID, Quantity: 0}, nil
		}
		return nil, fmt.Errorf("get stock location: %w", err)
	}
	return &sl, nil
}

// Upsert inserta o actualiza la cantidad para (producto, tienda).
func (r *StockLocationRepo) Upsert(sl *entity.StockLocation) error {
	query := `
		INSERT INTO stock_locations (product_id, store_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, now(), now())
		ON CONFLICT (product_id, store_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query, sl.ProductID, sl.StoreID, sl.Quantity).Scan(&sl.ID)
	if err != nil {
		return fmt.Errorf("upsert stock location: %w", err)
	}
	return nil
}

// SumByProduct suma el stock de un producto en todas las tiendas.
func (r *StockLocationRepo) SumByProduct(productID int64) (int, error) {
	var total int
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(quantity), 0) FROM stock_locations WHERE product_id = $1`,
		productID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum stock by product: %w", err)
	}
	return total, nil
}

// ListByProduct lista las ubicaciones de stock de un producto.
func (r *StockLocationRepo) ListByProduct(productID int64) ([]*entity.StockLocation, error) {
	return r.list(`WHERE product_id = $1`, productID)
}

// ListByStore lista las ubicaciones de stock de una tienda.
func (r *StockLocationRepo) ListByStore(storeID int64) ([]*entity.StockLocation, error) {
	return r.list(`WHERE store_id = $1`, storeID)
}

func (r *StockLocationRepo) list(where string, arg any) ([]*entity.StockLocation, error) {
	query := `
		SELECT id, product_id, store_id, quantity, created_at, updated_at
		FROM stock_locations ` + where + ` ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, arg)
	if err != nil {
		return nil, fmt.Errorf("list stock locations: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockLocation
	for rows.Next() {
		var sl entity.StockLocation
		if err := rows.Scan(&sl.ID, &sl.ProductID, &sl.StoreID, &sl.Quantity, &sl.CreatedAt, &sl.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock location: %w", err)
		}
		list = append(list, &sl)
	}
	return list, rows.Err()
}
