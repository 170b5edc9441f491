package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/erp-api/internal/domain/entity"
	"github.com/jhoicas/erp-api/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo persistencia de tiendas.
type StoreRepo struct {
	q Querier
}

func NewStoreRepository(q Querier) *StoreRepo {
	return &StoreRepo{q: q}
}

func (r *StoreRepo) Create(store *entity.Store) error {
	query := `
		INSERT INTO stores (name, location, contact_number, manager_id, total_sales, operating_hours, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		store.Name, store.Location, store.ContactNumber, store.ManagerID,
		store.TotalSales, store.OperatingHours, store.CreatedAt, store.UpdatedAt,
	).Scan(&store.ID)
	if err != nil {
		return fmt.Errorf("insert store: %w", err)
	}
	return nil
}

func (r *StoreRepo) GetByID(id int64) (*entity.Store, error) {
	query := `
		SELECT id, name, location, contact_number, manager_id, total_sales, operating_hours, created_at, updated_at
		FROM stores WHERE id = $1`
	var s entity.Store
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Name, &s.Location, &s.ContactNumber, &s.ManagerID,
		&s.TotalSales, &s.OperatingHours, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store: %w", err)
	}
	return &s, nil
}

func (r *StoreRepo) Update(store *entity.Store) error {
	query := `
		UPDATE stores SET name = $2, location = $3, contact_number = $4, manager_id = $5,
		       total_sales = $6, operating_hours = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		store.ID, store.Name, store.Location, store.ContactNumber, store.ManagerID,
		store.TotalSales, store.OperatingHours, store.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update store: %w", err)
	}
	return nil
}

// IncrementTotalSales suma 1 al contador de ventas de la tienda. Se hace en
// SQL para no perder incrementos entre lecturas concurrentes.
func (r *StoreRepo) IncrementTotalSales(storeID int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE stores SET total_sales = total_sales + 1, updated_at = now() WHERE id = $1`,
		storeID,
	)
	if err != nil {
		return fmt.Errorf("increment store sales: %w", err)
	}
	return nil
}

func (r *StoreRepo) List(limit, offset int) ([]*entity.Store, error) {
	query := `
		SELECT id, name, location, contact_number, manager_id, total_sales, operating_hours, created_at, updated_at
		FROM stores ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Store
	for rows.Next() {
		var s entity.Store
		if err := rows.Scan(&s.ID, &s.Name, &s.Location, &s.ContactNumber, &s.ManagerID,
			&s.TotalSales, &s.OperatingHours, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

func (r *StoreRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stores WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete store: %w", err)
	}
	return nil
}
